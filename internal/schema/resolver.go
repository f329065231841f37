package schema

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/logger"
	"github.com/MKhiriev/go-better-config/models"
)

// Resolver resolves schemas. The zero value reads the OS file system and
// the process environment.
type Resolver struct {
	Env environ.Environment
	FS  loader.FileSystem
	Log *logger.Logger
}

// Resolve loads the sources of s, applies its override merge and computes
// every field, then resolves each nested block the same way.
func (r *Resolver) Resolve(ctx context.Context, s *Schema) (*Resolved, error) {
	log := r.Log
	if log == nil {
		log = logger.FromContext(ctx)
	}
	log = log.WithStr("resolution_id", newResolutionID())

	return r.resolve(ctx, s, s.Format, s.Target, log)
}

func (r *Resolver) resolve(ctx context.Context, s *Schema, format loader.Format, target string, log *logger.Logger) (*Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ld := loader.New(format,
		loader.WithEnvironment(r.environment()),
		loader.WithFS(r.FS),
		loader.WithLogger(log),
		loader.WithPrefix(s.EnvPrefix),
		loader.WithMode(s.Mode),
	)
	if target == "" {
		target = format.DefaultTarget()
	}

	base, err := ld.Read(target)
	if err != nil {
		return nil, err
	}
	scoped := base.Scope(s.KeyPrefix)

	params := make(models.FlatMap, len(scoped))
	var overridden []string
	for _, d := range ld.Explain(scoped, s.excluded()) {
		params[d.Key] = d.Value
		if d.Overridden {
			overridden = append(overridden, d.Key)
		}
	}

	out := &Resolved{
		name:   s.Name,
		params: params,
		fields: make(map[string]Field, len(s.Fields)),
		values: make(map[string]string, len(s.Fields)),
		blocks: make(map[string]*Resolved, len(s.Blocks)),
	}
	for _, f := range s.Fields {
		out.fields[f.Name] = f
		if v, ok := fieldValue(f, params); ok {
			out.values[f.Name] = v
		}
	}

	log.Debug().
		Str("schema", s.Name).
		Str("target", target).
		Int("keys", len(params)).
		Strs("overridden", overridden).
		Msg("schema block resolved")

	for _, block := range s.Blocks {
		bFormat, bTarget := block.Format, block.Target
		if bTarget == "" {
			bTarget = target
			if bFormat == loader.FormatAuto {
				bFormat = format
			}
		}

		nested, err := r.resolve(ctx, block, bFormat, bTarget, log)
		if err != nil {
			return nil, err
		}
		out.blocks[block.Name] = nested
	}

	return out, nil
}

// newResolutionID returns a time-ordered ID so log lines of consecutive
// resolutions sort together.
func newResolutionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

func (r *Resolver) environment() environ.Environment {
	if r.Env == nil {
		return environ.OS()
	}
	return r.Env
}

func fieldValue(f Field, params models.FlatMap) (string, bool) {
	if f.Getter != nil {
		return f.Getter(params), true
	}
	if v, ok := params[f.key()]; ok {
		return v, true
	}
	if f.HasDefault {
		return f.Default, true
	}
	return "", false
}
