// Package bmad compresses the label space of multi-label classification
// problems with boolean matrix decomposition.
//
// A label matrix C (N instances × L labels) is factored into two boolean
// matrices, compressed (N×size) and upper (size×L), so that the boolean
// product compressed ⊗ upper approximates C. A downstream learner is trained
// on the few latent labels instead of the full label set; its latent
// predictions are expanded back into L labels through upper.
//
// Layout:
//
//	matrix/          — Boolean and Dense containers, AND-OR product, conversions
//	bmd/             — Decomposer contract and the Asso decomposition
//	dataset/         — label/feature split of a dataset, CSV ingestion
//	mlc/             — Transformer (fit, transform, reconstruct), Classifier, metrics
//	scorer/          — k-nearest-neighbour reference scorer
//	internal/config  — YAML + environment configuration (koanf)
//	internal/logging — zap logger construction
//	cmd/bmad         — command-line front end (cobra)
//
// Quick start:
//
//	ds, _ := dataset.ReadCSV(f, 6)
//	nn, _ := scorer.NewNearestNeighbour(3)
//	clf := mlc.NewClassifier(nn, mlc.WithSize(3))
//	_ = clf.Train(ds)
//	y, _ := clf.Predict(instance)
package bmad
