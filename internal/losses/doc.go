// Package losses implements uncertainty-weighted training losses for
// anchor-based object detection.
//
// Both losses follow the classic RetinaNet formulation extended with a
// trainable homoscedastic-uncertainty scalar per loss (Kendall & Gal,
// "What Uncertainties Do We Need in Bayesian Deep Learning for Computer
// Vision?"): the loss is attenuated by exp(-sigma) and regularized by
// sigma/2, so the model can learn how much to trust each task.
//
// A loss constructor returns a functor plus the sigma parameter it reads.
// The functor re-reads the parameter value on every call, so a host
// optimizer can train sigma between evaluations (see SigmaGrad).
package losses
