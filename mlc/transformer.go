// SPDX-License-Identifier: MIT

package mlc

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/bmad/bmd"
	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
)

const opFit = "Transformer.Fit"

// LatentPrefix names the latent label columns of a training set (z0, z1, …)
// when the input dataset carries column names.
const LatentPrefix = "z"

// Transformer bridges a labeled dataset and the latent label space.
// A nil model means Unfit. All methods are safe for concurrent use; a
// concurrent Fit is observed either entirely or not at all.
type Transformer struct {
	opts  Options
	model atomic.Pointer[Model]
}

// NewTransformer returns an Unfit Transformer.
func NewTransformer(opts ...Option) *Transformer {
	return &Transformer{opts: gatherOptions(opts...)}
}

// Fit decomposes the labels of ds and returns the training set
// [latent labels | features] with split index size. On success the new
// Model replaces any previous one; on failure the previous Model stays.
//
// Implementation:
//   - Stage 1: validate (nil → size ≥ MinSize → threshold → size < L)
//     before touching the data.
//   - Stage 2: split ds into labels and features.
//   - Stage 3: decompose and check the factor shapes of the decomposer.
//   - Stage 4: merge the compressed factor with the features.
//   - Stage 5: publish the Model.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidSize, ErrInvalidThreshold,
//     dataset.ErrNonBinaryLabel, matrix.ErrBadShape (decomposer broke its
//     shape contract), or any error returned by the decomposer.
func (t *Transformer) Fit(ds *dataset.Dataset, size int, threshold float64) (*dataset.Dataset, error) {
	m, train, err := t.fit(ds, size, threshold)
	if err != nil {
		return nil, err
	}
	t.model.Store(m)

	return train, nil
}

// fit computes a Model and its training set without publishing it.
func (t *Transformer) fit(ds *dataset.Dataset, size int, threshold float64) (*Model, *dataset.Dataset, error) {
	if ds == nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, matrix.ErrNilMatrix)
	}
	if size < MinSize {
		return nil, nil, fmt.Errorf("%s: size %d below %d: %w", opFit, size, MinSize, ErrInvalidSize)
	}
	if err := bmd.ValidateThreshold(threshold); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if err := bmd.ValidateSize(size, ds.NumLabels()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}

	labels, err := ds.Labels()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	features, err := ds.Features()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}

	log := t.opts.logger.With(
		zap.Int("instances", labels.Rows()),
		zap.Int("labels", labels.Cols()),
		zap.Int("size", size),
		zap.Float64("threshold", threshold),
	)
	log.Debug("decomposing label matrix")

	compressed, upper, err := t.opts.decomposer.Decompose(labels, size, threshold)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if err = bmd.ValidateFactors(labels, compressed, upper, size); err != nil {
		log.Warn("decomposer returned malformed factors", zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}

	approx, err := matrix.BooleanProduct(compressed, upper)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	reconErr, err := matrix.Difference(labels, approx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}

	latent, err := matrix.DenseFromBoolean(compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	train, err := dataset.Merge(latent, features)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if names := ds.FeatureNames(); names != nil {
		if train, err = train.WithNames(append(latentNames(size), names...)); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opFit, err)
		}
	}

	m := &Model{
		size:        size,
		threshold:   threshold,
		numLabels:   ds.NumLabels(),
		numFeatures: ds.NumFeatures(),
		compressed:  compressed.Clone(),
		upper:       upper.Clone(),
		reconErr:    reconErr,
	}
	log.Info("label transformer fitted", zap.Int("reconstruction_error", reconErr))

	return m, train, nil
}

// Model returns the current Model or ErrNotFitted.
func (t *Transformer) Model() (*Model, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}

	return m, nil
}

// Fitted reports whether a Model has been published.
func (t *Transformer) Fitted() bool { return t.model.Load() != nil }

// TransformInstance delegates to the current Model.
func (t *Transformer) TransformInstance(x []float64) ([]float64, error) {
	m, err := t.Model()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransformInstance, err)
	}

	return m.TransformInstance(x)
}

// Reconstruct delegates to the current Model.
func (t *Transformer) Reconstruct(scores []float64) ([]float64, error) {
	m, err := t.Model()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return m.Reconstruct(scores)
}

func latentNames(size int) []string {
	out := make([]string, size)
	for k := range out {
		out[k] = LatentPrefix + strconv.Itoa(k)
	}

	return out
}
