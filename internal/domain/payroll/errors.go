package payroll

import "errors"

var (
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrPayslipAccessDenied = errors.New("you do not have permission to access this payslip")
)
