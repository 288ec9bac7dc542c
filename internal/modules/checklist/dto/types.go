package dto

type ItemOutput struct {
	ID      string
	Label   string
	Sub     string
	Checked bool
}
