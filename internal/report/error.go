package report

import "errors"

var ErrUploadInvalid = errors.New("order upload contains invalid rows")
