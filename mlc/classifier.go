// SPDX-License-Identifier: MIT

package mlc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
)

const (
	opTrain    = "Classifier.Train"
	opPredict  = "Classifier.Predict"
	opEvaluate = "Classifier.Evaluate"
)

// Scorer is the downstream learner trained on latent labels.
//
// Train receives rows [latent labels | features] with split index
// NumLabels() == size. Score receives one row whose latent cells are NaN
// and returns one real-valued score per latent label.
type Scorer interface {
	Train(train *dataset.Dataset) error
	Score(row []float64) ([]float64, error)
}

// Classifier is a multi-label classifier that trains a Scorer on the
// compressed label space and reconstructs full predictions from its scores.
//
// Predict may run concurrently with other Predict calls when the Scorer's
// Score is safe for concurrent use. Train and Predict must not overlap
// unless the Scorer supports training while scoring.
type Classifier struct {
	scorer      Scorer
	transformer *Transformer
	opts        Options
}

// NewClassifier wires scorer to a Transformer configured by opts.
// Panics on a nil scorer.
func NewClassifier(scorer Scorer, opts ...Option) *Classifier {
	if scorer == nil {
		panic("mlc: NewClassifier: nil scorer")
	}
	o := gatherOptions(opts...)

	return &Classifier{
		scorer:      scorer,
		transformer: &Transformer{opts: o},
		opts:        o,
	}
}

// Train fits the label transformer with the configured size and threshold
// and trains the scorer on the compressed training set. The new Model is
// published only after the scorer trained successfully.
func (c *Classifier) Train(ds *dataset.Dataset) error {
	m, train, err := c.transformer.fit(ds, c.opts.size, c.opts.threshold)
	if err != nil {
		return fmt.Errorf("%s: %w", opTrain, err)
	}
	if err = c.scorer.Train(train); err != nil {
		return fmt.Errorf("%s: scorer: %w", opTrain, err)
	}
	c.transformer.model.Store(m)
	c.opts.logger.Debug("classifier trained",
		zap.Int("instances", train.Rows()),
		zap.Int("latent_labels", m.Size()),
		zap.Int("features", m.NumFeatures()),
	)

	return nil
}

// Model returns the fitted Model or ErrNotFitted.
func (c *Classifier) Model() (*Model, error) { return c.transformer.Model() }

// Predict returns the L-length 0/1 prediction for instance x
// ([labels | features], label cells ignored). One Model snapshot serves the
// whole call.
//
// Errors:
//   - ErrNotFitted, matrix.ErrBadShape, ErrScoreLength, or a scorer error.
func (c *Classifier) Predict(x []float64) ([]float64, error) {
	m, err := c.transformer.Model()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}

	return c.predict(m, x)
}

func (c *Classifier) predict(m *Model, x []float64) ([]float64, error) {
	row, err := m.TransformInstance(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}
	scores, err := c.scorer.Score(row)
	if err != nil {
		return nil, fmt.Errorf("%s: scorer: %w", opPredict, err)
	}
	if len(scores) != m.Size() {
		return nil, fmt.Errorf("%s: got %d scores, want %d: %w", opPredict, len(scores), m.Size(), ErrScoreLength)
	}

	return m.Reconstruct(scores)
}

// Evaluation summarises predictions over a labeled test set.
type Evaluation struct {
	Instances       int
	HammingLoss     float64
	ExactMatch      float64
	JaccardAccuracy float64
}

// Evaluate predicts every instance of test and scores the predictions
// against its labels.
//
// Errors:
//   - ErrNotFitted, dataset.ErrNonBinaryLabel, matrix.ErrBadShape (label
//     count differs from the fitted one), or any Predict error.
func (c *Classifier) Evaluate(test *dataset.Dataset) (Evaluation, error) {
	if test == nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, matrix.ErrNilMatrix)
	}
	m, err := c.transformer.Model()
	if err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	truth, err := test.Labels()
	if err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	if truth.Cols() != m.NumLabels() {
		return Evaluation{}, fmt.Errorf("%s: %d labels, fitted on %d: %w", opEvaluate, truth.Cols(), m.NumLabels(), matrix.ErrBadShape)
	}
	pred, err := matrix.NewBoolean(truth.Rows(), truth.Cols())
	if err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	var x, y []float64
	for i := 0; i < test.Rows(); i++ {
		if x, err = test.Instance(i); err != nil {
			return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
		}
		if y, err = c.predict(m, x); err != nil {
			return Evaluation{}, fmt.Errorf("%s: instance %d: %w", opEvaluate, i, err)
		}
		for j, v := range y {
			if err = pred.Set(i, j, v == matrix.True); err != nil {
				return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
			}
		}
	}

	ev := Evaluation{Instances: truth.Rows()}
	if ev.HammingLoss, err = HammingLoss(truth, pred); err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	if ev.ExactMatch, err = ExactMatch(truth, pred); err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	if ev.JaccardAccuracy, err = JaccardAccuracy(truth, pred); err != nil {
		return Evaluation{}, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	c.opts.logger.Debug("classifier evaluated",
		zap.Int("instances", ev.Instances),
		zap.Float64("hamming_loss", ev.HammingLoss),
		zap.Float64("exact_match", ev.ExactMatch),
	)

	return ev, nil
}
