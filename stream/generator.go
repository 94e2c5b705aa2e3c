package stream

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// Uniform generates a synthetic link stream: for every instant from stop down
// to 0 and for every pair i<j of the nodes, the link (i, j, t) is emitted with
// probability 1/proba. Links come newest first.
type Uniform struct {
	nodes  int
	chance float64
	rng    *rand.Rand

	time  Time
	u, v  Node
	ended bool
}

// NewUniform builds a generator over nodes vertices. proba must be >= 1;
// seed makes the stream reproducible.
func NewUniform(nodes int, stop Time, proba float64, seed uint64) (*Uniform, error) {
	if nodes < 0 {
		return nil, ErrNegativeSize
	}
	if proba < 1 {
		return nil, fmt.Errorf("stream: proba %v must be >= 1", proba)
	}

	return &Uniform{
		nodes:  nodes,
		chance: 1 / proba,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		time:   stop,
		u:      0,
		v:      1,
	}, nil
}

// Next returns the next drawn link or io.EOF once instant 0 is exhausted.
func (g *Uniform) Next() (Link, error) {
	for !g.ended {
		for g.u < g.nodes {
			for g.v < g.nodes {
				l := Link{Node1: g.u, Node2: g.v, Time: g.time}
				g.v++
				if g.rng.Float64() <= g.chance {
					return l, nil
				}
			}
			g.u++
			g.v = g.u + 1
		}
		if g.time == 0 {
			g.ended = true
			break
		}
		g.time--
		g.u, g.v = 0, 1
	}

	return Link{}, io.EOF
}
