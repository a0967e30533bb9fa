// Package input parses closest-approach queries from text.
package input

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// fieldNames lists the numbers of a query in the order they are read.
var fieldNames = [8]string{"px", "py", "ux", "uy", "qx", "qy", "vx", "vy"}

// Query is one closest-approach question: point P moving by U and point Q
// moving by V over a single time step.
type Query struct {
	P, U mgl64.Vec2
	Q, V mgl64.Vec2
}

// ParseQuery reads "px py ux uy qx qy vx vy" from a line. Numbers may be
// separated by whitespace, commas, or both.
func ParseQuery(line string) (Query, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return ParseArgs(fields)
}

// ParseArgs reads a query from exactly eight numeric arguments.
func ParseArgs(args []string) (Query, error) {
	if len(args) != len(fieldNames) {
		return Query{}, errors.Errorf("expected %d numbers (%s), got %d",
			len(fieldNames), strings.Join(fieldNames[:], " "), len(args))
	}

	var n [8]float64
	for i, s := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Query{}, errors.Wrapf(err, "field %s", fieldNames[i])
		}
		n[i] = f
	}

	return Query{
		P: mgl64.Vec2{n[0], n[1]},
		U: mgl64.Vec2{n[2], n[3]},
		Q: mgl64.Vec2{n[4], n[5]},
		V: mgl64.Vec2{n[6], n[7]},
	}, nil
}

// IsQuit reports whether the line asks to end the session.
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
