package brep

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ParseCSFloats parses a string of comma seperated floats, as taken by the
// -color and -transform flags of the command line tool.
func ParseCSFloats(csfloats string) (floats []float64, err error) {
	stringSegments := strings.Split(csfloats, ",")
	floats = make([]float64, 0, len(stringSegments))
	var num float64
	for _, seg := range stringSegments {
		num, err = strconv.ParseFloat(strings.TrimSpace(seg), 64)
		if err != nil {
			err = errors.New("could not parse float64 from: " + seg)
			return
		}
		floats = append(floats, num)
	}
	return
}

// assert panics with the given statement when validity (a bool or a
// func() bool) does not hold. Checks only run with DEBUG_LEVEL >= 1.
func assert(statement string, validity interface{}) {
	if debugLevel() < 1 {
		return
	}
	var notValid bool
	if lambda, ok := validity.(func() bool); ok {
		notValid = !lambda()
	} else if boolean, ok := validity.(bool); ok {
		notValid = !boolean
	}
	if notValid {
		fmt.Fprint(os.Stderr, "\a") // bell
		red := color.New(color.FgRed).SprintFunc()
		panic(red("Assertion failed: " + statement))
	}
}

func debugLevel() (level int64) {
	level, _ = strconv.ParseInt(os.Getenv("DEBUG_LEVEL"), 10, 64)
	return
}
