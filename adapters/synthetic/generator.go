// Package synthetic generates the survey sample dataset. There is no real
// ingestion: every respondent is drawn from fixed marginal distributions,
// with sleep and mental health derived from daily usage plus independent
// noise so the known negative associations hold in expectation.
package synthetic

import (
	"context"
	"math"
	"math/rand"
	"time"

	"pulseboard/domain/core"
	"pulseboard/domain/survey"
	"pulseboard/internal/errors"
)

// Config configures the sample data generator
type Config struct {
	// Rows is the number of respondents to generate.
	Rows int
	// Seed drives the RNG. Zero or negative selects system entropy, so only
	// explicitly seeded runs are reproducible.
	Seed int64
}

// DefaultConfig returns the reference dataset shape: 300 rows, entropy-seeded
func DefaultConfig() Config {
	return Config{Rows: 300, Seed: 0}
}

// Generator produces synthetic survey tables
type Generator struct {
	config Config
	rng    *rand.Rand
}

// New creates a generator. With a positive seed the output is deterministic.
func New(config Config) *Generator {
	seed := config.Seed
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Generate produces a complete table satisfying the survey data model.
// Fails atomically: on error no table is returned, never a partial dataset.
func (g *Generator) Generate(ctx context.Context) (survey.Table, error) {
	if err := ctx.Err(); err != nil {
		return survey.Table{}, errors.GenerationFailed(err)
	}
	if g.config.Rows <= 0 {
		return survey.Table{}, errors.InvalidInput("row count must be positive")
	}

	rows := make([]survey.Respondent, g.config.Rows)
	for i := range rows {
		rows[i] = g.respondent()
	}
	return survey.NewTable(core.NewDatasetID(), time.Now(), rows), nil
}

// respondent draws one survey row. Usage is independent; sleep and mental
// health are deterministic functions of usage plus their own noise terms.
func (g *Generator) respondent() survey.Respondent {
	usage := round1(1 + g.rng.Float64()*11)

	sleep := g.rng.NormFloat64()*1.0 + 7.5 - 0.2*usage
	sleep = round1(clamp(sleep, 3, 10))

	mental := g.rng.NormFloat64()*10 + 75 - 2.5*usage
	mentalScore := int(clamp(mental, 10, 100))

	return survey.Respondent{
		Gender:            g.randomGender(),
		Education:         g.randomEducation(),
		DailyUsageHours:   usage,
		Platform:          g.randomPlatform(),
		SleepHours:        sleep,
		MentalHealthScore: mentalScore,
	}
}

func (g *Generator) randomGender() survey.Gender {
	if g.rng.Float64() <= 0.48 {
		return survey.GenderMale
	}
	return survey.GenderFemale
}

func (g *Generator) randomEducation() survey.Education {
	levels := survey.EducationLevels()
	weights := []float64{0.4, 0.5, 0.1} // Undergraduates most common

	r := g.rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return levels[i]
		}
	}
	return levels[len(levels)-1]
}

func (g *Generator) randomPlatform() survey.Platform {
	platforms := survey.Platforms()
	weights := []float64{0.30, 0.35, 0.15, 0.15, 0.05}

	r := g.rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return platforms[i]
		}
	}
	return platforms[len(platforms)-1]
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
