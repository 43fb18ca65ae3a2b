package app

import (
	"context"

	"fractals/pkg/core"
	"fractals/pkg/fractals/koch"
	"fractals/pkg/fractals/sierpinski"
)

// Frames builds the generator for kind and the results to play back. With
// grow set, koch and sierpinski produce one result per order or depth up to
// the configured one; every other combination yields a single result.
func Frames(ctx context.Context, kind core.Kind, params map[string]string, grow bool) (core.Generator, []core.Result, error) {
	gen, err := core.Lookup(kind, params)
	if err != nil {
		return nil, nil, err
	}
	if grow {
		switch kind {
		case core.KindKoch:
			cfg, err := koch.FromMap(params)
			if err != nil {
				return nil, nil, err
			}
			orders, err := koch.Orders(cfg)
			if err != nil {
				return nil, nil, err
			}
			frames := make([]core.Result, len(orders))
			for i, segs := range orders {
				frames[i] = core.Result{Kind: kind, Segments: segs}
			}
			return gen, frames, nil
		case core.KindSierpinski:
			cfg, err := sierpinski.FromMap(params)
			if err != nil {
				return nil, nil, err
			}
			depths, err := sierpinski.Progression(cfg)
			if err != nil {
				return nil, nil, err
			}
			frames := make([]core.Result, len(depths))
			for i, tris := range depths {
				frames[i] = core.Result{Kind: kind, Triangles: tris}
			}
			return gen, frames, nil
		}
	}
	res, err := gen.Generate(ctx)
	if err != nil {
		return nil, nil, err
	}
	return gen, []core.Result{res}, nil
}
