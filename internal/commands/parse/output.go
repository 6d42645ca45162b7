package parse

import (
	"fmt"
	"io"

	"github.com/artuross/pineapple/internal/commands/parse/config"
	"github.com/artuross/pineapple/internal/commands/parse/exec"
	"github.com/artuross/pineapple/internal/pineapple/printer"
	"github.com/kr/pretty"
)

// writeResults prints each program in the requested format. A header naming
// the input is written only when there is more than one result.
func writeResults(w io.Writer, format config.Format, results []exec.Result) error {
	for index, result := range results {
		if len(results) > 1 {
			if index > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(w, "==> %s <==\n", result.Input.Name); err != nil {
				return err
			}
		}

		if err := writeProgram(w, format, result); err != nil {
			return fmt.Errorf("%s: %w", result.Input.Name, err)
		}
	}

	return nil
}

func writeProgram(w io.Writer, format config.Format, result exec.Result) error {
	switch format {
	case config.FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", result.Program)
		return err

	case config.FormatJSON:
		data, err := printer.MarshalJSON(result.Program)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case config.FormatSource:
		return printer.Fprint(w, result.Program)

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
