// Copyright 2025 the feedkit authors.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived
// from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND
// CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES,
// INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR
// CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY,
// WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH
// DAMAGE.

package kafka

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/Shopify/sarama"
	cluster "github.com/bsm/sarama-cluster"
	"github.com/pkg/errors"
)

// Source is a feedkit.Source consuming track records from Kafka. Each
// message value must be a JSON object; its members become the record's
// columns. Non-string members are rendered with their default Go
// formatting since the feed schema treats everything as text.
type Source struct {
	Hosts   []string
	Topics  []string
	Group   string
	MaxMsgs int

	numMsgs  int
	consumer *cluster.Consumer
}

// NewSource gets a new Source with default connection settings.
func NewSource() *Source {
	return &Source{
		Hosts:  []string{"localhost:9092"},
		Topics: []string{"tracks"},
		Group:  "feedkit",
	}
}

// Record returns the record parsed from the next message. If MaxMsgs is
// set, io.EOF is returned once that many messages have been consumed.
func (s *Source) Record() (map[string]string, error) {
	if s.MaxMsgs > 0 && s.numMsgs >= s.MaxMsgs {
		return nil, io.EOF
	}
	msg, ok := <-s.consumer.Messages()
	if !ok {
		return nil, io.EOF
	}
	s.numMsgs++
	rec, err := parseMessage(msg.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "message at %s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
	}
	s.consumer.MarkOffset(msg, "")
	return rec, nil
}

func parseMessage(value []byte) (map[string]string, error) {
	parsed := make(map[string]interface{})
	if err := json.Unmarshal(value, &parsed); err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}
	rec := make(map[string]string, len(parsed))
	for k, v := range parsed {
		switch val := v.(type) {
		case nil:
			// absent and null are the same thing downstream
		case string:
			rec[k] = val
		case float64:
			rec[k] = formatNumber(val)
		default:
			rec[k] = fmt.Sprintf("%v", val)
		}
	}
	return rec, nil
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}

// Open initializes the kafka consumer. It must be called before
// Record.
func (s *Source) Open() error {
	sarama.Logger = log.New(ioutil.Discard, "", 0)
	config := cluster.NewConfig()
	config.Config.Version = sarama.V0_10_0_0
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Group.Return.Notifications = true

	var err error
	s.consumer, err = cluster.NewConsumer(s.Hosts, s.Group, s.Topics, config)
	if err != nil {
		return errors.Wrap(err, "getting new consumer")
	}

	go func() {
		for err := range s.consumer.Errors() {
			log.Printf("kafka error: %s", err.Error())
		}
	}()
	go func() {
		for ntf := range s.consumer.Notifications() {
			log.Printf("kafka rebalanced: %+v", ntf)
		}
	}()
	return nil
}

// Close closes the underlying kafka consumer.
func (s *Source) Close() error {
	err := s.consumer.Close()
	return errors.Wrap(err, "closing kafka consumer")
}
