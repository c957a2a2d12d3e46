package entity

import "sort"

// ConfigDocument is the parsed project configuration file.
type ConfigDocument struct {
	Path               string
	DefaultEnvironment string
	Environments       map[string]EnvironmentConfig
}

// EnvironmentNames returns the configured environment names in sorted order.
func (d *ConfigDocument) EnvironmentNames() []string {
	names := make([]string, 0, len(d.Environments))
	for name := range d.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type EnvironmentConfig struct {
	AwsProfile         string             `mapstructure:"awsProfile" yaml:"awsProfile,omitempty"`
	DeploymentName     string             `mapstructure:"deploymentName" yaml:"deploymentName,omitempty"`
	AccountNumber      string             `mapstructure:"accountNumber" yaml:"accountNumber"`
	Region             string             `mapstructure:"region" yaml:"region"`
	DeploymentStage    string             `mapstructure:"deploymentStage" yaml:"deploymentStage,omitempty"`
	AppName            string             `mapstructure:"appName" yaml:"appName,omitempty"`
	LogLevel           string             `mapstructure:"logLevel" yaml:"logLevel,omitempty"`
	TargetPlatform     string             `mapstructure:"targetPlatform" yaml:"targetPlatform,omitempty"`
	RemovalPolicy      string             `mapstructure:"removalPolicy" yaml:"removalPolicy,omitempty"`
	RunCdkNag          bool               `mapstructure:"runCdkNag" yaml:"runCdkNag"`
	UIConfig           UIConfig           `mapstructure:"uiConfig" yaml:"uiConfig"`
	VpcConfig          VpcConfig          `mapstructure:"vpcConfig" yaml:"vpcConfig"`
	CognitoAuthConfig  CognitoAuthConfig  `mapstructure:"cognitoAuthConfig" yaml:"cognitoAuthConfig"`
	LoadBalancerConfig LoadBalancerConfig `mapstructure:"loadBalancerConfig" yaml:"loadBalancerConfig"`
	WafConfig          WafConfig          `mapstructure:"wafConfig" yaml:"wafConfig"`
	AlarmConfig        AlarmConfig        `mapstructure:"alarmConfig" yaml:"alarmConfig"`
	AuthConfig         AuthConfig         `mapstructure:"authConfig" yaml:"authConfig"`
	RestAPIConfig      RestAPIConfig      `mapstructure:"restApiConfig" yaml:"restApiConfig"`
	DataConfig         DataConfig         `mapstructure:"dataConfig" yaml:"dataConfig"`
	Tags               []Tag              `mapstructure:"tags" yaml:"tags,omitempty"`
}

// Profile returns the AWS CLI profile, or "default" when none is configured.
func (e *EnvironmentConfig) Profile() string {
	if e.AwsProfile == "" {
		return "default"
	}
	return e.AwsProfile
}

type UIConfig struct {
	Title string `mapstructure:"title" yaml:"title,omitempty"`
}

type VpcConfig struct {
	VpcID             string   `mapstructure:"vpcId" yaml:"vpcId,omitempty"`
	PublicSubnetIDs   []string `mapstructure:"publicSubnetIds" yaml:"publicSubnetIds,omitempty"`
	PrivateSubnetIDs  []string `mapstructure:"privateSubnetIds" yaml:"privateSubnetIds,omitempty"`
	IsolatedSubnetIDs []string `mapstructure:"isolatedSubnetIds" yaml:"isolatedSubnetIds,omitempty"`
}

type CognitoAuthConfig struct {
	UserPoolName       string `mapstructure:"userPoolName" yaml:"userPoolName,omitempty"`
	UserPoolDomainName string `mapstructure:"userPoolDomainName" yaml:"userPoolDomainName,omitempty"`
}

type LoadBalancerConfig struct {
	IdleTimeout       int    `mapstructure:"idleTimeout" yaml:"idleTimeout,omitempty"`
	AlbPlacement      string `mapstructure:"albPlacement" yaml:"albPlacement"`
	SslCertificateArn string `mapstructure:"sslCertificateArn" yaml:"sslCertificateArn,omitempty"`
}

type WafConfig struct {
	ManagedRules ManagedRules `mapstructure:"managedRules" yaml:"managedRules"`
	RateLimiting RateLimiting `mapstructure:"rateLimiting" yaml:"rateLimiting"`
	Logging      WafLogging   `mapstructure:"logging" yaml:"logging"`
}

type ManagedRules struct {
	CoreRuleSet        bool `mapstructure:"coreRuleSet" yaml:"coreRuleSet"`
	KnownBadInputs     bool `mapstructure:"knownBadInputs" yaml:"knownBadInputs"`
	AmazonIPReputation bool `mapstructure:"amazonIpReputation" yaml:"amazonIpReputation"`
}

type RateLimiting struct {
	Enabled           bool `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerMinute int  `mapstructure:"requestsPerMinute" yaml:"requestsPerMinute"`
}

type WafLogging struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type AlarmConfig struct {
	Enable                bool     `mapstructure:"enable" yaml:"enable"`
	Period                int      `mapstructure:"period" yaml:"period"`
	Threshold             int      `mapstructure:"threshold" yaml:"threshold"`
	EvaluationPeriods     int      `mapstructure:"evaluationPeriods" yaml:"evaluationPeriods"`
	LoggingFilterPatterns []string `mapstructure:"loggingFilterPatterns" yaml:"loggingFilterPatterns,omitempty"`
	EmailAddresses        []string `mapstructure:"emailAddresses" yaml:"emailAddresses,omitempty"`
}

type AuthConfig struct {
	EnableAuth bool   `mapstructure:"enableAuth" yaml:"enableAuth"`
	Authority  string `mapstructure:"authority" yaml:"authority,omitempty"`
	ClientID   string `mapstructure:"clientId" yaml:"clientId,omitempty"`
	SecretName string `mapstructure:"secretName" yaml:"secretName,omitempty"`
}

type RestAPIConfig struct {
	APIVersion        string            `mapstructure:"apiVersion" yaml:"apiVersion"`
	ContainerConfig   ContainerConfig   `mapstructure:"containerConfig" yaml:"containerConfig"`
	HealthCheckConfig HealthCheckConfig `mapstructure:"healthCheckConfig" yaml:"healthCheckConfig"`
	AutoScalingConfig AutoScalingConfig `mapstructure:"autoScalingConfig" yaml:"autoScalingConfig"`
}

type ContainerConfig struct {
	CPULimit          int                        `mapstructure:"cpuLimit" yaml:"cpuLimit"`
	MemoryLimit       int                        `mapstructure:"memoryLimit" yaml:"memoryLimit"`
	HealthCheckConfig ContainerHealthCheckConfig `mapstructure:"healthCheckConfig" yaml:"healthCheckConfig"`
}

type ContainerHealthCheckConfig struct {
	Command     []string `mapstructure:"command" yaml:"command"`
	Interval    int      `mapstructure:"interval" yaml:"interval"`
	StartPeriod int      `mapstructure:"startPeriod" yaml:"startPeriod"`
	Timeout     int      `mapstructure:"timeout" yaml:"timeout"`
	Retries     int      `mapstructure:"retries" yaml:"retries"`
}

type HealthCheckConfig struct {
	Path                    string `mapstructure:"path" yaml:"path,omitempty"`
	Interval                int    `mapstructure:"interval" yaml:"interval"`
	Timeout                 int    `mapstructure:"timeout" yaml:"timeout"`
	HealthyThresholdCount   int    `mapstructure:"healthyThresholdCount" yaml:"healthyThresholdCount"`
	UnhealthyThresholdCount int    `mapstructure:"unhealthyThresholdCount" yaml:"unhealthyThresholdCount"`
}

type AutoScalingConfig struct {
	MinCapacity           int          `mapstructure:"minCapacity" yaml:"minCapacity"`
	MaxCapacity           int          `mapstructure:"maxCapacity" yaml:"maxCapacity"`
	DefaultInstanceWarmup int          `mapstructure:"defaultInstanceWarmup" yaml:"defaultInstanceWarmup"`
	Cooldown              int          `mapstructure:"cooldown" yaml:"cooldown"`
	MetricConfig          MetricConfig `mapstructure:"metricConfig" yaml:"metricConfig"`
}

type MetricConfig struct {
	AlbMetricName           string `mapstructure:"albMetricName" yaml:"albMetricName,omitempty"`
	TargetValue             int    `mapstructure:"targetValue" yaml:"targetValue,omitempty"`
	Duration                int    `mapstructure:"duration" yaml:"duration"`
	EstimatedInstanceWarmup int    `mapstructure:"estimatedInstanceWarmup" yaml:"estimatedInstanceWarmup"`
}

type DataConfig struct {
	ElastiCacheStorageLimitGb   int    `mapstructure:"elastiCacheStorageLimitGb" yaml:"elastiCacheStorageLimitGb"`
	ElastiCacheEcpuLimit        int    `mapstructure:"elastiCacheEcpuLimit" yaml:"elastiCacheEcpuLimit"`
	FileStorageEnabled          bool   `mapstructure:"fileStorageEnabled" yaml:"fileStorageEnabled"`
	FileStorageType             string `mapstructure:"fileStorageType" yaml:"fileStorageType"`
	OpenSearchEnabled           bool   `mapstructure:"openSearchEnabled" yaml:"openSearchEnabled"`
	OpenSearchDefaultIndex      string `mapstructure:"openSearchDefaultIndex" yaml:"openSearchDefaultIndex"`
	OpenSearchStandbyReplicas   bool   `mapstructure:"openSearchStandbyReplicas" yaml:"openSearchStandbyReplicas"`
	NeptuneEnabled              bool   `mapstructure:"neptuneEnabled" yaml:"neptuneEnabled"`
	BedrockKnowledgeBaseEnabled bool   `mapstructure:"bedrockKnowledgeBaseEnabled" yaml:"bedrockKnowledgeBaseEnabled"`
	EmbeddingModelID            string `mapstructure:"embeddingModelId" yaml:"embeddingModelId"`
	VectorIndexName             string `mapstructure:"vectorIndexName" yaml:"vectorIndexName"`
}

type Tag struct {
	Key   string `mapstructure:"Key" yaml:"Key"`
	Value string `mapstructure:"Value" yaml:"Value"`
}

// Clone returns a deep copy.
func (e EnvironmentConfig) Clone() EnvironmentConfig {
	out := e
	out.VpcConfig.PublicSubnetIDs = cloneStrings(e.VpcConfig.PublicSubnetIDs)
	out.VpcConfig.PrivateSubnetIDs = cloneStrings(e.VpcConfig.PrivateSubnetIDs)
	out.VpcConfig.IsolatedSubnetIDs = cloneStrings(e.VpcConfig.IsolatedSubnetIDs)
	out.AlarmConfig.LoggingFilterPatterns = cloneStrings(e.AlarmConfig.LoggingFilterPatterns)
	out.AlarmConfig.EmailAddresses = cloneStrings(e.AlarmConfig.EmailAddresses)
	out.RestAPIConfig.ContainerConfig.HealthCheckConfig.Command = cloneStrings(e.RestAPIConfig.ContainerConfig.HealthCheckConfig.Command)
	if e.Tags != nil {
		out.Tags = make([]Tag, len(e.Tags))
		copy(out.Tags, e.Tags)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
