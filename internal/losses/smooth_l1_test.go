package losses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/backend/cpu"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// refSmoothL1 recomputes the regression loss in float64, one element at a
// time.
func refSmoothL1(sigma, sigmaVar float64, targets, preds [][]float64, states []float64) float64 {
	sigmaSquared := sigma * sigma
	factor := 1 / (2 * math.Exp(sigmaVar))
	logErfc := math.Log(1 - math.Erf(math.Sqrt(factor)/sigmaSquared))

	positives := 0.0
	sum := 0.0
	for i, s := range states {
		if s != 1 {
			continue
		}
		positives++
		for c := range targets[i] {
			diff := math.Abs(preds[i][c] - targets[i][c])
			if diff < 1/sigmaSquared {
				sum += factor*diff*diff + 0.5*sigmaVar
			} else {
				sum += -logErfc/sigmaSquared*diff + logErfc +
					factor/(sigmaSquared*sigmaSquared) + 0.5*sigmaVar
			}
		}
	}
	if positives < 1 {
		positives = 1
	}
	return sum / positives
}

// regressionFixture is one batch of three anchors: positive, ignored,
// positive, with a mix of small and large regression errors.
func regressionFixture(t *testing.T, be *cpu.CPUBackend) (yTrue, yPred *tensor.Tensor[float32, *cpu.CPUBackend]) {
	t.Helper()
	yTrue = mkTensor(t, be, tensor.Shape{1, 3, 5}, []float32{
		0.1, -0.2, 0.3, 0.05, AnchorPositive,
		0, 0, 0, 0, AnchorIgnore,
		-0.5, 0.4, 0.1, -0.3, AnchorPositive,
	})
	yPred = mkTensor(t, be, tensor.Shape{1, 3, 4}, []float32{
		0.15, -0.21, 0.8, 0.05,
		1, 1, 1, 1,
		-0.5, -0.6, 0.12, -0.25,
	})
	return yTrue, yPred
}

func TestSmoothL1MatchesReference(t *testing.T) {
	be := cpu.New()
	yTrue, yPred := regressionFixture(t, be)

	targets := [][]float64{{0.1, -0.2, 0.3, 0.05}, {0, 0, 0, 0}, {-0.5, 0.4, 0.1, -0.3}}
	preds := [][]float64{{0.15, -0.21, 0.8, 0.05}, {1, 1, 1, 1}, {-0.5, -0.6, 0.12, -0.25}}
	states := []float64{1, -1, 1}

	loss, sigma := SmoothL1(DefaultSmoothL1Config[*cpu.CPUBackend](), nil, be)

	for _, sigmaVar := range []float32{0, 0.2, 0.5, -0.3} {
		sigma.SetValue(sigmaVar)
		got := loss(yTrue, yPred).Item()
		want := refSmoothL1(3.0, float64(sigmaVar), targets, preds, states)
		assert.InDelta(t, want, float64(got), 1e-4, "sigma_var=%v", sigmaVar)
	}
}

func TestSmoothL1NoPositivesIsZero(t *testing.T) {
	be := cpu.New()
	yTrue := mkTensor(t, be, tensor.Shape{1, 2, 5}, []float32{
		0.1, 0.2, 0.3, 0.4, AnchorBackground,
		0.5, 0.6, 0.7, 0.8, AnchorIgnore,
	})
	yPred := mkTensor(t, be, tensor.Shape{1, 2, 4}, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})

	loss, _ := SmoothL1(DefaultSmoothL1Config[*cpu.CPUBackend](), nil, be)
	assert.Equal(t, float32(0), loss(yTrue, yPred).Item())
}

// A perfect prediction on a single positive anchor leaves only the sigma/2
// regularizer: 4 coordinates contribute 0.5*sigma_var each, normalized by 1.
func TestSmoothL1PerfectPrediction(t *testing.T) {
	be := cpu.New()
	yTrue := mkTensor(t, be, tensor.Shape{1, 1, 5}, []float32{
		0.1, -0.2, 0.3, -0.4, AnchorPositive,
	})
	yPred := mkTensor(t, be, tensor.Shape{1, 1, 4}, []float32{
		0.1, -0.2, 0.3, -0.4,
	})

	loss, sigma := SmoothL1(DefaultSmoothL1Config[*cpu.CPUBackend](), nil, be)

	assert.InDelta(t, 0, float64(loss(yTrue, yPred).Item()), 1e-6)

	sigma.SetValue(0.8)
	assert.InDelta(t, 4*0.5*0.8, float64(loss(yTrue, yPred).Item()), 1e-5)
}

// The shipped formula's two branches do not meet at |diff| = 1/sigma²: the
// linear branch is offset by logErfc*(1 - 1/sigma⁴) relative to the
// quadratic one. The discontinuity is part of the numeric contract, so pin
// it down instead of papering over it.
func TestSmoothL1BranchBoundary(t *testing.T) {
	be := cpu.New()
	loss, _ := SmoothL1(DefaultSmoothL1Config[*cpu.CPUBackend](), nil, be)

	const sigmaSquared = 9.0
	const step = 1e-4
	threshold := 1.0 / sigmaSquared

	eval := func(diff float64) float64 {
		yTrue := mkTensor(t, be, tensor.Shape{1, 1, 5}, []float32{
			0, 0, 0, 0, AnchorPositive,
		})
		yPred := mkTensor(t, be, tensor.Shape{1, 1, 4}, []float32{
			float32(diff), 0, 0, 0,
		})
		return float64(loss(yTrue, yPred).Item())
	}

	factor := 0.5 // 1/(2*exp(0))
	logErfc := math.Log(1 - math.Erf(math.Sqrt(factor)/sigmaSquared))

	below := eval(threshold - step)
	wantBelow := factor * (threshold - step) * (threshold - step)
	assert.InDelta(t, wantBelow, below, 1e-5)

	above := eval(threshold + step)
	wantAbove := -logErfc/sigmaSquared*(threshold+step) + logErfc +
		factor/(sigmaSquared*sigmaSquared)
	assert.InDelta(t, wantAbove, above, 1e-5)

	gap := wantAbove - wantBelow
	assert.InDelta(t, logErfc*(1-1/(sigmaSquared*sigmaSquared)), gap, 1e-3)
}

func TestSmoothL1RegistersSigma(t *testing.T) {
	be := cpu.New()

	params := nn.NewParamSet[*cpu.CPUBackend]()
	_, sigma := SmoothL1(DefaultSmoothL1Config[*cpu.CPUBackend](), params, be)

	assert.Equal(t, "sigma_sq_smooth_l1", sigma.Name())
	assert.Equal(t, float32(0), sigma.Value())
	assert.Same(t, sigma, params.Get("sigma_sq_smooth_l1"))
}
