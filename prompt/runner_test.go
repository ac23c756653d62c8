package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/enetx/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/stepform"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	inputPos     int
	selectPos    int
	inputCfgs    []InputConfig
	selectCfgs   []SelectConfig
	infoMessages []string
	inputErr     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputCfgs = append(s.inputCfgs, cfg)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectCfgs = append(s.selectCfgs, cfg)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

var (
	personalInputs = []string{"Ada", "Lovelace", "ada@example.com"}
	addressInputs  = []string{"12 St James's Square", "London", "SW1Y 4JH"}
	paymentInputs  = []string{"4111111111111111", "12/30", "123"}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestRunner_FullFlow(t *testing.T) {
	driver := &stubDriver{
		inputs:    concat(personalInputs, addressInputs, paymentInputs),
		selectIdx: []int{0, 1, 1},
	}

	record, err := NewRunner(stepform.New(), driver).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, g.String("Ada"), record.Get(stepform.PersonalDetails, stepform.FieldFirstName))
	assert.Equal(t, g.String("SW1Y 4JH"), record.Get(stepform.AddressDetails, stepform.FieldZipCode))
	assert.Equal(t, g.String("123"), record.Get(stepform.PaymentDetails, stepform.FieldCVV))

	assert.Equal(t, []string{
		"Step 1/3: Personal Details",
		"Step 2/3: Address Details",
		"Step 3/3: Payment Details",
		"Form submitted successfully!",
	}, driver.infoMessages)

	require.Len(t, driver.selectCfgs, 3)
	assert.Equal(t, []string{"Next"}, driver.selectCfgs[0].Options)
	assert.Equal(t, []string{"Previous", "Next"}, driver.selectCfgs[1].Options)
	assert.Equal(t, []string{"Previous", "Submit"}, driver.selectCfgs[2].Options)

	require.Len(t, driver.inputCfgs, 9)
	assert.Equal(t, "personalDetails.firstName", driver.inputCfgs[0].Key)
	assert.Equal(t, "First Name:", driver.inputCfgs[0].Message)
	assert.Equal(t, "paymentDetails.cvv", driver.inputCfgs[8].Key)
}

func TestRunner_RejectedStepIsShownAgain(t *testing.T) {
	driver := &stubDriver{
		inputs:    concat([]string{"Ada", "", "not-an-email"}, personalInputs, addressInputs, paymentInputs),
		selectIdx: []int{0, 0, 1, 1},
	}

	_, err := NewRunner(stepform.New(), driver).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Step 1/3: Personal Details",
		"Step 1/3: Personal Details",
		"  ! Last Name is required",
		"  ! Invalid email format",
		"Step 2/3: Address Details",
		"Step 3/3: Payment Details",
		"Form submitted successfully!",
	}, driver.infoMessages)

	retry := driver.inputCfgs[3:6]
	assert.Equal(t, "Ada", retry[0].Default)
	assert.Empty(t, retry[0].Help)
	assert.Equal(t, "Last Name is required", retry[1].Help)
	assert.Equal(t, "not-an-email", retry[2].Default)
	assert.Equal(t, "Invalid email format", retry[2].Help)
}

func TestRunner_PrevNavigation(t *testing.T) {
	driver := &stubDriver{
		inputs:    concat(personalInputs, []string{"", "", ""}, personalInputs, addressInputs, paymentInputs),
		selectIdx: []int{0, 0, 0, 1, 1},
	}
	form := stepform.New()

	_, err := NewRunner(form, driver).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, g.Slice[stepform.Step]{
		stepform.StepPersonal,
		stepform.StepAddress,
		stepform.StepPersonal,
		stepform.StepAddress,
		stepform.StepPayment,
		stepform.StepSubmitted,
	}, form.History())

	// values entered before moving back are offered again
	assert.Equal(t, "Ada", driver.inputCfgs[6].Default)
}

func TestRunner_AbortedInput(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	form := stepform.New()

	_, err := NewRunner(form, driver).Run(context.Background())

	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, stepform.StepPersonal, form.Current())
}

func TestRunner_InvalidChoice(t *testing.T) {
	driver := &stubDriver{
		inputs:    personalInputs,
		selectIdx: []int{3},
	}

	_, err := NewRunner(stepform.New(), driver).Run(context.Background())

	assert.ErrorContains(t, err, "invalid choice 3")
}

func TestRunner_SyncForm(t *testing.T) {
	driver := &stubDriver{
		inputs:    concat(personalInputs, addressInputs, paymentInputs),
		selectIdx: []int{0, 1, 1},
	}
	form := stepform.New().Sync()

	_, err := NewRunner(form, driver).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, form.Submitted())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "addressDetails.zipCode", Key(stepform.AddressDetails, stepform.FieldZipCode))
}
