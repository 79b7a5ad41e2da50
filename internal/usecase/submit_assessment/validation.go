package submit_assessment

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.TestType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTest, req.TestType)
	}

	if len(req.Answers) == 0 {
		return fmt.Errorf("%w: answers are required", ErrInvalidInput)
	}

	return nil
}
