package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/etree"
)

// Run executes the itinerary command.
func (c *ItineraryCmd) Run(deps *Dependencies) error {
	data, err := deps.readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	days := deps.Itinerary.ParseItinerary(string(data))
	if days == nil {
		days = []tourcopy.ItineraryDay{}
	}

	switch c.Format {
	case "json":
		return writeJSON(deps.Stdout, days)
	case "xml":
		return writeXML(deps.Stdout, func(enc *etree.Encoder) error { return enc.EncodeItinerary(days) })
	}
	_, err = fmt.Fprintln(deps.Stdout, tourcopy.FormatItinerary(days))
	return err
}

// Run executes the faq command.
func (c *FAQCmd) Run(deps *Dependencies) error {
	data, err := deps.readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	entries := deps.FAQ.ParseFAQ(string(data))
	if entries == nil {
		entries = []tourcopy.FaqEntry{}
	}

	switch c.Format {
	case "json":
		return writeJSON(deps.Stdout, entries)
	case "xml":
		return writeXML(deps.Stdout, func(enc *etree.Encoder) error { return enc.EncodeFAQ(entries) })
	}

	if len(entries) == 0 {
		_, err = fmt.Fprintln(deps.Stdout, "No FAQ entries found.")
		return err
	}
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = fmt.Sprintf("Q%d. %s\n%s", i+1, e.Question, e.Answer)
	}
	_, err = fmt.Fprintln(deps.Stdout, strings.Join(blocks, "\n\n"))
	return err
}

// Run executes the words command.
func (c *WordsCmd) Run(deps *Dependencies) error {
	for _, file := range c.Files {
		data, err := deps.readInput(file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
			return err
		}
		count := tourcopy.WordCount(string(data))
		fmt.Fprintf(deps.Stdout, "%d\t%s\n", count, file)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeXML(w io.Writer, encode func(*etree.Encoder) error) error {
	if err := encode(etree.NewEncoder(w)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
