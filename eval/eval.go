// Package eval provides the evaluation harness: it drives batches of test
// cases through a deployed language-model endpoint, scores each actual
// output against its expectation, and aggregates per-case results with
// failure isolation.
package eval

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	// Private error variables (users don't need to check these)
	errEval         = errors.New("eval error")
	errScoring      = errors.New("evaluation error")
	errCaseIterator = errors.New("case iterator error")
)

// Completer produces text for a prompt. *llm.Client implements it; tests
// substitute fakes.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ScoreFunc computes the metrics for one comparison.
type ScoreFunc func(actual, expected string) (ScoreResult, error)

// Opts defines the options for constructing a Runner.
type Opts struct {
	// Client is used for the one outbound call made per case.
	// Required.
	Client Completer

	// Score compares actual against expected output.
	// Optional. Defaults to NewScorer().Score.
	Score ScoreFunc

	// Parallelism controls the number of goroutines used to run cases.
	// Optional. Defaults to 1 (sequential execution). Results keep input
	// order regardless of this setting.
	Parallelism int

	// Tracer is used for per-case spans.
	// Optional. Defaults to the global tracer provider.
	Tracer oteltrace.Tracer
}

// Runner executes batches of cases. A Runner is safe for concurrent use.
type Runner struct {
	client     Completer
	scoreFunc  ScoreFunc
	goroutines int
	tracer     oteltrace.Tracer
}

// NewRunner creates a Runner from opts.
func NewRunner(opts Opts) (*Runner, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("%w: Client is required", errEval)
	}

	scoreFunc := opts.Score
	if scoreFunc == nil {
		scoreFunc = NewScorer().Score
	}

	goroutines := opts.Parallelism
	if goroutines < 1 {
		goroutines = 1
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer("evaldemo.eval")
	}

	return &Runner{
		client:     opts.Client,
		scoreFunc:  scoreFunc,
		goroutines: goroutines,
		tracer:     tracer,
	}, nil
}

// Run evaluates every case and returns one Result per case, in input order.
// A failing case never aborts the batch: each of the four failure kinds
// (transport, non-success status, malformed response, scoring) is converted
// into that case's Error field. Run itself only fails for conditions outside
// any single case, such as a broken case iterator.
func (r *Runner) Run(ctx context.Context, cases Cases) ([]Result, error) {
	if cases == nil {
		return nil, fmt.Errorf("%w: Cases is required", errEval)
	}

	all, err := drain(cases)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errCaseIterator, err)
	}

	results := make([]Result, len(all))

	// Fan out across cases but collect by original index so completion
	// order never reorders the output.
	g := new(errgroup.Group)
	g.SetLimit(r.goroutines)
	for i, c := range all {
		g.Go(func() error {
			results[i] = r.runCase(ctx, c)
			return nil
		})
	}
	_ = g.Wait() // case failures are recorded, never returned

	return results, nil
}

// drain materializes the iterator. Ordering of the result slice is defined
// by iteration order.
func drain(cases Cases) ([]Case, error) {
	var all []Case
	for {
		c, err := cases.Next()
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, c)
	}
}

// runCase evaluates a single case. All failures are recorded in the
// returned Result; runCase never panics the batch.
func (r *Runner) runCase(ctx context.Context, c Case) Result {
	ctx, span := r.tracer.Start(ctx, "eval")
	defer span.End()

	name := c.Name
	if name == "" {
		name = PlaceholderName
	}
	span.SetAttributes(attribute.String("eval.test_name", name))

	result := Result{
		TestName:       name,
		Prompt:         c.Prompt,
		ExpectedOutput: c.Expected,
	}

	actual, err := r.generate(ctx, c.Prompt)
	if err != nil {
		recordSpanError(span, err)
		result.Error = err.Error()
		return result
	}

	scores, err := r.score(ctx, actual, c.Expected)
	if err != nil {
		werr := fmt.Errorf("%w: %v", errScoring, err)
		recordSpanError(span, werr)
		result.Error = werr.Error()
		return result
	}

	result.ActualOutput = actual
	result.Scores = &scores

	span.SetAttributes(
		attribute.Bool("eval.exact_match", scores.ExactMatch),
		attribute.Float64("eval.string_distance_score", scores.StringDistanceScore),
	)
	return result
}

// generate issues the single outbound call for a case.
func (r *Runner) generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "task")
	defer span.End()
	span.SetAttributes(attribute.Int("eval.prompt_len", len(prompt)))

	actual, err := r.client.Generate(ctx, prompt)
	if err != nil {
		recordSpanError(span, err)
		return "", err
	}
	return actual, nil
}

// score runs the scorer under its own span.
func (r *Runner) score(ctx context.Context, actual, expected string) (ScoreResult, error) {
	_, span := r.tracer.Start(ctx, "score")
	defer span.End()

	scores, err := r.scoreFunc(actual, expected)
	if err != nil {
		recordSpanError(span, err)
		return ScoreResult{}, err
	}
	return scores, nil
}

func recordSpanError(span oteltrace.Span, err error) {
	// hardcode the error type when we know what it is; by default otel
	// would show *fmt.wrapErrors as the type, which isn't super nice to
	// look at.
	var errType string
	switch {
	case errors.Is(err, errScoring):
		errType = "ErrScoring"
	case errors.Is(err, errCaseIterator):
		errType = "ErrCaseIterator"
	case errors.Is(err, errEval):
		errType = "ErrEval"
	case errors.Is(err, context.DeadlineExceeded):
		errType = "ErrTimeout"
	default:
		errType = fmt.Sprintf("%T", err)
	}

	span.AddEvent("exception", oteltrace.WithAttributes(
		attribute.String("exception.type", errType),
		attribute.String("exception.message", err.Error()),
	))
	span.SetStatus(codes.Error, err.Error())
}
