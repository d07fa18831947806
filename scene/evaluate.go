package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/ByteArena/collide2d"
	"github.com/ByteArena/collide2d/internal/log"
	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers bounds the number of pairs evaluated at the same time.
	// Values below 1 mean 1.
	Workers int
	Logger  log.Log
}

// Contact is the collision of the shapes named A and B. Normal is the
// direction A has to move.
type Contact struct {
	A      string         `json:"a" msgpack:"a"`
	B      string         `json:"b" msgpack:"b"`
	Normal collide2d.Vec2 `json:"normal" msgpack:"normal"`
	Point  collide2d.Vec2 `json:"point" msgpack:"point"`
	Depth  float64        `json:"depth" msgpack:"depth"`
}

type Report struct {
	Scene    string    `json:"scene" msgpack:"scene"`
	Shapes   int       `json:"shapes" msgpack:"shapes"`
	Pairs    int       `json:"pairs" msgpack:"pairs"`
	Contacts []Contact `json:"contacts" msgpack:"contacts"`
	Digest   string    `json:"digest" msgpack:"digest"`
}

type pair struct {
	a, b int
}

// candidatePairs lists every (i, j), i < j, that has a collision routine.
func candidatePairs(shapes []NamedShape) []pair {
	pairs := make([]pair, 0, len(shapes)*(len(shapes)-1)/2)
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			if collide2d.CanCollide(shapes[i].Shape, shapes[j].Shape) {
				pairs = append(pairs, pair{a: i, b: j})
			}
		}
	}
	return pairs
}

// Digest hashes the msgpack encoding of the contacts.
func Digest(contacts []Contact) (string, error) {
	raw, err := msgpack.Marshal(contacts)
	if err != nil {
		return "", fmt.Errorf("encode contacts: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(raw)), nil
}

// Evaluate collides every pair of shapes that can collide and collects the
// colliding ones. Contacts come out in pair order whatever the number of
// workers.
func Evaluate(ctx context.Context, shapes []NamedShape, opts Options) (*Report, error) {

	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	pairs := candidatePairs(shapes)
	results := make([]collide2d.CollisionResult, len(pairs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for k, p := range pairs {
		if groupCtx.Err() != nil {
			break
		}

		k, p := k, p
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[k] = collide2d.Collide(shapes[p.a].Shape, shapes[p.b].Shape)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contacts := make([]Contact, 0)
	for k, result := range results {
		if !result.Colliding {
			continue
		}

		p := pairs[k]
		contacts = append(contacts, Contact{
			A:      shapes[p.a].Name,
			B:      shapes[p.b].Name,
			Normal: result.Normal,
			Point:  result.Point,
			Depth:  result.Depth,
		})

		logger.Debug("contact",
			log.String("a", shapes[p.a].Name),
			log.String("b", shapes[p.b].Name),
			log.Float64("depth", result.Depth),
		)
	}

	digest, err := Digest(contacts)
	if err != nil {
		return nil, err
	}

	logger.Info("pairs evaluated",
		log.Int("shapes", len(shapes)),
		log.Int("pairs", len(pairs)),
		log.Int("contacts", len(contacts)),
		log.Int("workers", workers),
		log.Duration("elapsed", time.Since(start)),
	)

	return &Report{
		Shapes:   len(shapes),
		Pairs:    len(pairs),
		Contacts: contacts,
		Digest:   digest,
	}, nil
}

// Evaluate builds the scene and evaluates it.
func (s *Scene) Evaluate(ctx context.Context, opts Options) (*Report, error) {
	shapes, err := s.Build()
	if err != nil {
		return nil, err
	}

	report, err := Evaluate(ctx, shapes, opts)
	if err != nil {
		return nil, err
	}

	report.Scene = s.Name
	return report, nil
}
