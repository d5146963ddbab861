package interactive

import (
	"context"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/spf13/cast"
	"setup-cli/internal/logger"
	"setup-cli/pkg/models"
)

// Field describes one question asked during interactive setup
type Field struct {
	Key      models.ConfigKey
	Label    string
	Fallback interface{}
	State    string
}

// Fields lists the questions in the order they are asked
var Fields = []Field{
	{Key: models.KeyProjectName, Label: "Project name", Fallback: "Analytics Frontend", State: "CollectingProjectName"},
	{Key: models.KeyCompanyName, Label: "Company name", Fallback: "e-UCM Research Group", State: "CollectingCompanyName"},
	{Key: models.KeyAPIPath, Label: "API root path", Fallback: "localhost:3000/api", State: "CollectingApiPath"},
	{Key: models.KeyPort, Label: "API port", Fallback: 3350, State: "CollectingPort"},
	{Key: models.KeyAppPrefix, Label: "Application prefix", Fallback: "gleaner", State: "CollectingAppPrefix"},
}

// Resolver implements the ValueResolver interface
type Resolver struct {
	asker  Asker
	fields []Field
	log    *logger.Logger
}

// NewResolver creates a resolver asking the standard fields through asker
func NewResolver(asker Asker, log *logger.Logger) *Resolver {
	return &Resolver{
		asker:  asker,
		fields: Fields,
		log:    log,
	}
}

// Resolve asks every field in order and overlays the answers onto a copy of
// defaults. Nothing is returned unless every question was answered.
func (r *Resolver) Resolve(ctx context.Context, defaults models.ValueSet) (models.ValueSet, error) {
	answers := make(models.ValueSet, len(r.fields))

	for _, field := range r.fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.log.Debug().Str("state", field.State).Msg("prompting")

		value, err := r.ask(field, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to collect %s: %w", field.Key, err)
		}
		answers[string(field.Key)] = value
	}

	resolved := defaults.Clone()
	if err := mergo.Merge(&resolved, answers, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge answers: %w", err)
	}

	return resolved, nil
}

// ask asks one field. An empty answer, or one equal to the displayed
// default, keeps the default with its original type.
func (r *Resolver) ask(field Field, defaults models.ValueSet) (interface{}, error) {
	def := DefaultFor(field, defaults)
	display := cast.ToString(def)

	answer, err := r.asker.Ask(field.Label, display)
	if err != nil {
		return nil, err
	}

	if answer == "" || answer == display {
		return def, nil
	}
	return answer, nil
}

// DefaultFor returns the catalog value for the field, or its fallback when
// the catalog omits it or holds a zero value.
func DefaultFor(field Field, defaults models.ValueSet) interface{} {
	value, ok := defaults[string(field.Key)]
	if !ok || value == nil || reflect.ValueOf(value).IsZero() {
		return field.Fallback
	}
	return value
}
