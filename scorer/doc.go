// Package scorer provides a reference latent-label scorer for the mlc
// classifier: a k-nearest-neighbour regressor over the feature columns.
package scorer
