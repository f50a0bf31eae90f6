package cmd

import (
	"io"
	"log"
	"time"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/hybrid-search/feedkit/fake"
)

// GenMain is wrapped by NewGenCommand and only exported for testing purposes.
var GenMain *fake.Main

// NewGenCommand returns a new cobra command wrapping GenMain.
func NewGenCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	GenMain = fake.NewMain()
	genCommand := &cobra.Command{
		Use:   "gen",
		Short: "Generate a fake track dataset as CSV.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = GenMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := genCommand.Flags()
	err = commandeer.Flags(flags, GenMain)
	if err != nil {
		panic(err)
	}
	return genCommand
}

func init() {
	subcommandFns["gen"] = NewGenCommand
}
