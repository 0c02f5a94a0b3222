package spinner

type NullSpinner struct{}

func NewNullSpinner() *NullSpinner {
	return &NullSpinner{}
}

func (s *NullSpinner) Start() {}

func (s *NullSpinner) SetMessage(message string) {}

func (s *NullSpinner) Success(message string) {}

func (s *NullSpinner) Error(message string) {}
