package ui_test

import (
	"strings"
	"testing"

	"github.com/cwbdev/cwb/ui"
	"github.com/stretchr/testify/require"
)

var environmentSummaryTest = []struct {
	name string
	in   map[string]string
	out  string
}{
	{
		name: "No environment prints nothing",
		in:   nil,
		out:  "",
	},
	{
		name: "Environment summary aligns on the longest label",
		in: map[string]string{
			"Deployment name": "cwb-dev",
			"Stage":           "dev",
			"Account":         "111111111111",
			"Region":          "us-east-1",
			"Profile":         "dev",
			"App name":        "shop",
			"Log level":       "INFO",
		},
		out: multiline(
			"Account:         111111111111",
			"App name:        shop",
			"Deployment name: cwb-dev",
			"Log level:       INFO",
			"Profile:         dev",
			"Region:          us-east-1",
			"Stage:           dev",
		),
	},
	{
		name: "Unset profile keeps its label",
		in: map[string]string{
			"Account": "222222222222",
			"Region":  "eu-west-1",
			"Profile": "",
		},
		out: multiline(
			"Account: 222222222222",
			"Profile: ",
			"Region:  eu-west-1",
		),
	},
	{
		name: "Long config keys only pad the rest so much",
		in: map[string]string{
			"loadBalancerConfig.certificateArnsByDomainNameForThisVeryLongEnvironment": "[arn]",
			"region": "us-east-1",
		},
		out: multiline(
			"loadBalancerConfig.certificateArnsByDomainNameForThisVeryLongEnvironment: [arn]",
			"region:                                             us-east-1",
		),
	},
}

var doctorIssuesTest = []struct {
	name   string
	issues []string
	out    string
}{
	{
		name:   "Healthy project lists nothing",
		issues: nil,
		out:    "",
	},
	{
		name: "Issues are numbered and indented",
		issues: []string{
			"default environment 'qa' is not defined in config.yaml",
			"environment 'prod' has an invalid account number \"2222\" (expected 12 digits)",
			"missing tools: cdk, uv",
		},
		out: multiline(
			"  1) default environment 'qa' is not defined in config.yaml",
			"  2) environment 'prod' has an invalid account number \"2222\" (expected 12 digits)",
			"  3) missing tools: cdk, uv",
		),
	},
}

var detectionFindingsTest = []struct {
	name     string
	findings []string
	out      string
}{
	{
		name: "Findings are bulleted and indented",
		findings: []string{
			"Python backend detected in backend/",
			"Frontend detected in ui/ (yarn)",
			"CDK infrastructure detected in infrastructure/cdk/ (npm)",
		},
		out: multiline(
			"  - Python backend detected in backend/",
			"  - Frontend detected in ui/ (yarn)",
			"  - CDK infrastructure detected in infrastructure/cdk/ (npm)",
		),
	},
	{
		name:     "Single finding",
		findings: []string{"Python project with pyproject.toml detected"},
		out:      "  - Python project with pyproject.toml detected\n",
	},
}

var truncateTest = []struct {
	name  string
	inStr string
	inLen int
	out   string
}{
	{
		name:  "Short config values are kept",
		inStr: "us-east-1",
		inLen: 60,
		out:   "us-east-1",
	},
	{
		name:  "Certificate list keeps both ends",
		inStr: "[arn:aws:acm:us-east-1:111111111111:certificate/0f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b arn:aws:acm:us-east-1:111111111111:certificate/abcd]",
		inLen: 60,
		out:   "[arn:aws:acm:us-east-1:111111...1111111111:certificate/abcd]",
	},
	{
		name:  "Credential errors keep the reason",
		inStr: "exit status 255: An error occurred (ExpiredToken) when calling the GetCallerIdentity operation: The security token included in the request is expired",
		inLen: 120,
		out:   "exit status 255: An error occurred (ExpiredToken) when call...ion: The security token included in the request is expired",
	},
	{
		name:  "Tiny widths keep one character each side",
		inStr: "cwb-dev",
		inLen: 4,
		out:   "c...v",
	},
}

func TestEnvironmentSummary(t *testing.T) {
	for _, tt := range environmentSummaryTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.KeyValues(tt.in))
		})
	}
}

func TestDoctorIssues(t *testing.T) {
	for _, tt := range doctorIssuesTest {
		t.Run(tt.name, func(t *testing.T) {
			out := ""
			if len(tt.issues) > 0 {
				out = ui.PrefixLines(ui.OrderedList(tt.issues), "  ")
			}
			require.Equal(t, tt.out, out)
		})
	}
}

func TestDetectionFindings(t *testing.T) {
	for _, tt := range detectionFindingsTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.PrefixLines(ui.UnorderedList(tt.findings), "  "))
		})
	}
}

func TestTruncate(t *testing.T) {
	for _, tt := range truncateTest {
		t.Run(tt.name, func(t *testing.T) {
			out := ui.Truncate(tt.inStr, tt.inLen)
			require.Equal(t, tt.out, out)
			if tt.inLen < len(tt.inStr) && tt.inLen >= 5 {
				require.LessOrEqual(t, len(out), tt.inLen)
			}
		})
	}
}

func TestRollbackParagraph(t *testing.T) {
	text := "Check out the last good revision and run `cwb deploy deploy ApiStack` again, or roll back the CloudFormation stack from the AWS console."
	require.Equal(t, multiline(
		"Check out the last good revision and run `cwb deploy deploy",
		"ApiStack` again, or roll back the CloudFormation stack from",
		"the AWS console.",
	), ui.Paragraph(text))
	require.Empty(t, ui.Paragraph("  \n "))
}

// multiline joins lines the way the renderers terminate them.
func multiline(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
