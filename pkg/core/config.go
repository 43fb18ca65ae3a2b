package core

import (
	"math"
	"strconv"
	"strings"
)

// MapReader pulls typed values out of flag-style key/value pairs. Absent keys
// leave the destination untouched; the first malformed value is remembered
// and reported by Err.
type MapReader struct {
	cfg map[string]string
	err error
}

// NewMapReader wraps cfg, which may be nil.
func NewMapReader(cfg map[string]string) *MapReader {
	return &MapReader{cfg: cfg}
}

// Int parses key as a decimal integer into dst.
func (r *MapReader) Int(key string, dst *int) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v)
		return
	}
	*dst = parsed
}

// Int64 parses key as a decimal 64-bit integer into dst.
func (r *MapReader) Int64(key string, dst *int64) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, v)
		return
	}
	*dst = parsed
}

// Float parses key as a float into dst. The suffixes "pi" and "deg" are
// accepted so angles can be written as "0.5pi" or "30deg".
func (r *MapReader) Float(key string, dst *float64) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	parsed, err := parseAngle(v)
	if err != nil {
		r.fail(key, v)
		return
	}
	*dst = parsed
}

// Point parses prefix+"x" and prefix+"y" into dst.
func (r *MapReader) Point(prefix string, dst *Point) {
	r.Float(prefix+"x", &dst.X)
	r.Float(prefix+"y", &dst.Y)
}

// Bounds parses the four bounds keys under prefix into dst.
func (r *MapReader) Bounds(prefix string, dst *Bounds) {
	r.Float(prefix+"xmin", &dst.Min.X)
	r.Float(prefix+"xmax", &dst.Max.X)
	r.Float(prefix+"ymin", &dst.Min.Y)
	r.Float(prefix+"ymax", &dst.Max.Y)
}

// Err returns the first parse failure, wrapped in ErrInvalidParameter.
func (r *MapReader) Err() error { return r.err }

func (r *MapReader) lookup(key string) (string, bool) {
	if r.cfg == nil {
		return "", false
	}
	v, ok := r.cfg[key]
	return v, ok
}

func (r *MapReader) fail(key, value string) {
	if r.err == nil {
		r.err = Invalidf("%s=%q is not a number", key, value)
	}
}

func parseAngle(v string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "pi"):
		v, scale = strings.TrimSuffix(v, "pi"), math.Pi
		if v == "" {
			v = "1"
		}
	case strings.HasSuffix(v, "deg"):
		v, scale = strings.TrimSuffix(v, "deg"), math.Pi/180
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return f * scale, nil
}
