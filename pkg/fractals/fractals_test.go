package fractals

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"testing"

	"fractals/pkg/core"
)

func TestAllKindsRegistered(t *testing.T) {
	want := []core.Kind{core.KindChaos, core.KindKoch, core.KindMandelbrot, core.KindSierpinski, core.KindTree}
	if got := core.Kinds(); !slices.Equal(got, want) {
		t.Fatalf("registered kinds = %v, want %v", got, want)
	}
}

func TestGenerateIsRepeatable(t *testing.T) {
	small := map[core.Kind]map[string]string{
		core.KindMandelbrot: {"w": "24", "h": "16", "max_iter": "64"},
		core.KindKoch:       {"order": "3"},
		core.KindSierpinski: {"depth": "4"},
		core.KindChaos:      {"n": "500", "seed": "7"},
		core.KindTree:       {"depth": "6"},
	}
	for kind, cfg := range small {
		first, err := core.Generate(context.Background(), kind, cfg)
		if err != nil {
			t.Fatalf("%s: generate: %v", kind, err)
		}
		second, err := core.Generate(context.Background(), kind, cfg)
		if err != nil {
			t.Fatalf("%s: second generate: %v", kind, err)
		}
		if first.Kind != kind {
			t.Fatalf("%s: result tagged %q", kind, first.Kind)
		}
		if first.Len() == 0 {
			t.Fatalf("%s: empty result", kind)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: repeated generation differs", kind)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	cases := []struct {
		kind core.Kind
		cfg  map[string]string
		want error
	}{
		{core.KindKoch, map[string]string{"order": "-1"}, core.ErrInvalidParameter},
		{core.KindKoch, map[string]string{"order": "11"}, core.ErrResourceExhausted},
		{core.KindKoch, map[string]string{"order": "three"}, core.ErrInvalidParameter},
		{core.KindSierpinski, map[string]string{"p3x": "0", "p3y": "-0.8"}, core.ErrInvalidParameter},
		{core.KindTree, map[string]string{"length": "0"}, core.ErrInvalidParameter},
		{core.KindTree, map[string]string{"depth": "21"}, core.ErrResourceExhausted},
		{core.KindMandelbrot, map[string]string{"w": "0"}, core.ErrInvalidParameter},
		{core.KindMandelbrot, map[string]string{"max_iter": "0"}, core.ErrInvalidParameter},
		{core.KindChaos, map[string]string{"n": "-5"}, core.ErrInvalidParameter},
		{core.Kind("dragon"), nil, core.ErrUnknownKind},
	}
	for _, tc := range cases {
		_, err := core.Generate(context.Background(), tc.kind, tc.cfg)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s %v: err = %v, want %v", tc.kind, tc.cfg, err, tc.want)
		}
	}
}

func TestParametersRoundTrip(t *testing.T) {
	for _, kind := range core.Kinds() {
		g, err := core.Lookup(kind, nil)
		if err != nil {
			t.Fatalf("%s: lookup: %v", kind, err)
		}
		again, err := core.Lookup(kind, g.Parameters().Map())
		if err != nil {
			t.Fatalf("%s: lookup from snapshot: %v", kind, err)
		}
		if !reflect.DeepEqual(g.Parameters(), again.Parameters()) {
			t.Fatalf("%s: snapshot does not round-trip", kind)
		}
	}
}
