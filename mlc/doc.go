// Package mlc compresses the label space of a multi-label dataset with a
// boolean matrix decomposition and expands latent-label scores back into
// full label predictions.
//
// A Transformer moves through two states. Unfit holds no model; Fit holds
// an immutable Model carrying the compressed (N×size) and upper (size×L)
// factors of one decomposition run. Fit publishes a new Model atomically
// and only after every step succeeded, so readers never observe a partial
// pair and a failed re-fit keeps the previous Model.
//
// Column layout shared with the scorer:
//
//	training row:   [z0 … z(size-1) | features]   split index = size
//	prediction row: [NaN … NaN      | features]
//
// Reconstruction thresholds each latent score with PredictionCut (strict >)
// and multiplies the resulting 1×size row by the upper factor over the
// AND-OR semiring. PredictionCut is fixed and unrelated to the
// decomposition threshold chosen at fit time.
//
// Classifier wires a Transformer to a Scorer and adds the train, predict
// and evaluate lifecycle.
package mlc
