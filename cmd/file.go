package cmd

import (
	"io"
	"log"
	"time"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/hybrid-search/feedkit/file"
)

// FileMain is wrapped by NewFileCommand and only exported for testing purposes.
var FileMain *file.Main

// NewFileCommand returns a new cobra command wrapping FileMain.
func NewFileCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	FileMain = file.NewMain()
	fileCommand := &cobra.Command{
		Use:   "file",
		Short: "convert a local CSV file or directory of CSV files into a feed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = FileMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := fileCommand.Flags()
	err = commandeer.Flags(flags, FileMain)
	if err != nil {
		panic(err)
	}
	return fileCommand
}

func init() {
	subcommandFns["file"] = NewFileCommand
}
