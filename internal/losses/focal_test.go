package losses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/backend/cpu"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

func mkTensor(t *testing.T, be *cpu.CPUBackend, shape tensor.Shape, data []float32) *tensor.Tensor[float32, *cpu.CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, be)
	require.NoError(t, err)
	return x
}

// classificationFixture is one batch of four anchors over two classes:
// positive, background, ignored, positive.
func classificationFixture(t *testing.T, be *cpu.CPUBackend) (yTrue, yPred *tensor.Tensor[float32, *cpu.CPUBackend]) {
	t.Helper()
	yTrue = mkTensor(t, be, tensor.Shape{1, 4, 3}, []float32{
		1, 0, AnchorPositive,
		0, 0, AnchorBackground,
		1, 1, AnchorIgnore,
		0, 1, AnchorPositive,
	})
	yPred = mkTensor(t, be, tensor.Shape{1, 4, 2}, []float32{
		0.9, 0.2,
		0.3, 0.1,
		0.5, 0.5,
		0.4, 0.7,
	})
	return yTrue, yPred
}

// refFocal recomputes the focal loss in float64, one element at a time.
func refFocal(alpha, gamma, cutoff, sigmaVar float64, labels, preds [][]float64, states []float64) float64 {
	positives := 0.0
	for _, s := range states {
		if s == 1 {
			positives++
		}
	}
	if positives < 1 {
		positives = 1
	}

	sum := 0.0
	for i, s := range states {
		if s == -1 {
			continue
		}
		for c := range labels[i] {
			label, pred := labels[i][c], preds[i][c]

			alphaFactor := 1 - alpha
			focalWeight := math.Pow(1-(1-pred), math.Exp(-sigmaVar)) * math.Exp(-0.5*sigmaVar)
			if label > cutoff {
				alphaFactor = alpha
				focalWeight = math.Pow(1-pred, math.Exp(-sigmaVar)) * math.Exp(-0.5*sigmaVar)
			}
			weight := alphaFactor * math.Pow(focalWeight, gamma)

			clamped := math.Min(math.Max(pred, 1e-7), 1-1e-7)
			ce := -(label*math.Log(clamped) + (1-label)*math.Log(1-clamped))

			sum += weight * (ce*math.Exp(-sigmaVar) + sigmaVar/2)
		}
	}
	return sum / positives
}

func TestFocalMatchesReference(t *testing.T) {
	be := cpu.New()
	yTrue, yPred := classificationFixture(t, be)

	labels := [][]float64{{1, 0}, {0, 0}, {1, 1}, {0, 1}}
	preds := [][]float64{{0.9, 0.2}, {0.3, 0.1}, {0.5, 0.5}, {0.4, 0.7}}
	states := []float64{1, 0, -1, 1}

	loss, sigma := Focal(DefaultFocalConfig[*cpu.CPUBackend](), nil, be)

	for _, sigmaVar := range []float32{0, 0.3, 0.7, -0.4, 1.5} {
		sigma.SetValue(sigmaVar)
		got := loss(yTrue, yPred).Item()
		want := refFocal(0.1, 2.0, 0.5, float64(sigmaVar), labels, preds, states)
		assert.InDelta(t, want, float64(got), 1e-4, "sigma=%v", sigmaVar)
	}
}

func TestFocalAllIgnoredIsZero(t *testing.T) {
	be := cpu.New()
	yTrue := mkTensor(t, be, tensor.Shape{1, 3, 3}, []float32{
		1, 0, AnchorIgnore,
		0, 1, AnchorIgnore,
		1, 1, AnchorIgnore,
	})
	yPred := mkTensor(t, be, tensor.Shape{1, 3, 2}, []float32{
		0.2, 0.8,
		0.5, 0.5,
		0.1, 0.9,
	})

	loss, _ := Focal(DefaultFocalConfig[*cpu.CPUBackend](), nil, be)
	assert.Equal(t, float32(0), loss(yTrue, yPred).Item())
}

func TestFocalNonNegative(t *testing.T) {
	be := cpu.New()
	loss, _ := Focal(DefaultFocalConfig[*cpu.CPUBackend](), nil, be)

	for _, pred := range []float32{0, 0.01, 0.25, 0.5, 0.75, 0.99, 1} {
		yTrue := mkTensor(t, be, tensor.Shape{1, 2, 2}, []float32{
			1, AnchorPositive,
			0, AnchorBackground,
		})
		yPred := mkTensor(t, be, tensor.Shape{1, 2, 1}, []float32{pred, pred})
		assert.GreaterOrEqual(t, loss(yTrue, yPred).Item(), float32(0), "pred=%v", pred)
	}
}

// With alpha=0.5 and gamma=0 the weight collapses to a constant 0.5 and the
// loss reduces to scaled binary cross-entropy.
func TestFocalGammaZeroReducesToCrossEntropy(t *testing.T) {
	be := cpu.New()
	yTrue, yPred := classificationFixture(t, be)

	cfg := DefaultFocalConfig[*cpu.CPUBackend]()
	cfg.Alpha = 0.5
	cfg.Gamma = 0
	loss, _ := Focal(cfg, nil, be)

	bce := func(label, pred float64) float64 {
		return -(label*math.Log(pred) + (1-label)*math.Log(1-pred))
	}
	// six surviving elements (ignored anchor excluded), two positives
	want := 0.5 * (bce(1, 0.9) + bce(0, 0.2) +
		bce(0, 0.3) + bce(0, 0.1) +
		bce(0, 0.4) + bce(1, 0.7)) / 2

	assert.InDelta(t, want, float64(loss(yTrue, yPred).Item()), 1e-4)
}

// Recovering sum(bce)*exp(-sigma) from the gamma=0 loss must be strictly
// decreasing in sigma.
func TestFocalAttenuationMonotonic(t *testing.T) {
	be := cpu.New()
	yTrue, yPred := classificationFixture(t, be)

	cfg := DefaultFocalConfig[*cpu.CPUBackend]()
	cfg.Alpha = 0.5
	cfg.Gamma = 0
	loss, sigma := Focal(cfg, nil, be)

	const elements, positives = 6, 2
	scaledCE := func(sigmaVar float32) float64 {
		sigma.SetValue(sigmaVar)
		total := float64(loss(yTrue, yPred).Item()) * positives / 0.5
		return total - elements*float64(sigmaVar)/2
	}

	prev := scaledCE(-1)
	for _, sv := range []float32{-0.5, 0, 0.5, 1, 2} {
		cur := scaledCE(sv)
		assert.Less(t, cur, prev, "sigma=%v", sv)
		prev = cur
	}
}

func TestFocalRegistersSigma(t *testing.T) {
	be := cpu.New()

	params := nn.NewParamSet[*cpu.CPUBackend]()
	_, sigma := Focal(DefaultFocalConfig[*cpu.CPUBackend](), params, be)

	assert.Equal(t, "sigma_sq_focal", sigma.Name())
	assert.Equal(t, float32(0), sigma.Value())
	assert.Same(t, sigma, params.Get("sigma_sq_focal"))
	assert.Equal(t, 1, params.Len())
}

func TestFocalSharedSigmaNotReRegistered(t *testing.T) {
	be := cpu.New()

	params := nn.NewParamSet[*cpu.CPUBackend]()
	shared := nn.NewScalarParameter("sigma_shared", be)

	cfg := DefaultFocalConfig[*cpu.CPUBackend]()
	cfg.SigmaVar = shared
	_, sigma := Focal(cfg, params, be)

	assert.Same(t, shared, sigma)
	assert.Equal(t, 0, params.Len())
}
