package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mastercactapus/gspatial/coord"
)

// parsePoint reads a point in the form "x,y[,z...]".
func parsePoint(s string) (coord.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	p := make(coord.Point, len(parts))
	for i, str := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil, fmt.Errorf("parse point '%s': %w", s, err)
		}
		p[i] = val
	}
	return p, nil
}
