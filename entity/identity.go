package entity

// CallerIdentity is the subset of `aws sts get-caller-identity` cwb reads.
type CallerIdentity struct {
	Account string `json:"Account"`
	Arn     string `json:"Arn"`
	UserID  string `json:"UserId"`
}
