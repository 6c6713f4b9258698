package bounce

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt reads the three experiment inputs interactively, retrying
// indefinitely on non-numeric input or a domain violation. A non-numeric
// answer restarts all three questions rather than re-asking just one.
// It returns an error only when the input stream ends.
func Prompt(r io.Reader, w io.Writer) (Inputs, error) {
	scanner := bufio.NewScanner(r)

	for {
		var in Inputs
		ok, err := askAll(scanner, w, &in)
		if err != nil {
			return Inputs{}, err
		}
		if !ok {
			fmt.Fprint(w, "\nMake sure all inputs are numbers.\nPlease try again.\n\n")
			continue
		}

		if verr := in.Validate(); verr != nil {
			fmt.Fprintf(w, "\n%s.\nPlease try again.\n\n", capitalize(verr.Error()))
			continue
		}

		return in, nil
	}
}

func askAll(scanner *bufio.Scanner, w io.Writer, in *Inputs) (bool, error) {
	questions := []struct {
		prompt string
		dest   *float64
	}{
		{"What is the initial height the ball is dropped from in meters? ", &in.Initial},
		{"What is the minimum height in meters? ", &in.Minimum},
		{"What is the efficiency of the ball's bounce? ", &in.Efficiency},
	}

	for _, q := range questions {
		fmt.Fprint(w, q.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			return false, io.ErrUnexpectedEOF
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return false, nil
		}
		*q.dest = v
	}

	return true, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
