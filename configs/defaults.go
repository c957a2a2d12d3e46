package configs

import "github.com/spf13/viper"

// environmentDefaults fill optional fields absent from an environment block.
var environmentDefaults = map[string]interface{}{
	"deploymentStage": "dev",
	"logLevel":        "INFO",
	"targetPlatform":  "linux/amd64",
	"removalPolicy":   "DESTROY",

	"loadBalancerConfig.albPlacement": "public",

	"wafConfig.managedRules.knownBadInputs":     true,
	"wafConfig.managedRules.amazonIpReputation": true,
	"wafConfig.rateLimiting.enabled":            true,
	"wafConfig.rateLimiting.requestsPerMinute":  2000,

	"alarmConfig.period":            1,
	"alarmConfig.threshold":         1,
	"alarmConfig.evaluationPeriods": 1,

	"authConfig.enableAuth": true,

	"restApiConfig.apiVersion":                  "v1",
	"restApiConfig.containerConfig.cpuLimit":    1024,
	"restApiConfig.containerConfig.memoryLimit": 2048,

	"restApiConfig.containerConfig.healthCheckConfig.command":     []string{"CMD-SHELL", "exit 0"},
	"restApiConfig.containerConfig.healthCheckConfig.interval":    10,
	"restApiConfig.containerConfig.healthCheckConfig.startPeriod": 30,
	"restApiConfig.containerConfig.healthCheckConfig.timeout":     5,
	"restApiConfig.containerConfig.healthCheckConfig.retries":     3,

	"restApiConfig.healthCheckConfig.interval":                60,
	"restApiConfig.healthCheckConfig.timeout":                 30,
	"restApiConfig.healthCheckConfig.healthyThresholdCount":   2,
	"restApiConfig.healthCheckConfig.unhealthyThresholdCount": 10,

	"restApiConfig.autoScalingConfig.minCapacity":                          1,
	"restApiConfig.autoScalingConfig.maxCapacity":                          5,
	"restApiConfig.autoScalingConfig.defaultInstanceWarmup":                120,
	"restApiConfig.autoScalingConfig.cooldown":                             300,
	"restApiConfig.autoScalingConfig.metricConfig.duration":                60,
	"restApiConfig.autoScalingConfig.metricConfig.estimatedInstanceWarmup": 60,

	"dataConfig.elastiCacheStorageLimitGb": 50,
	"dataConfig.elastiCacheEcpuLimit":      10000,
	"dataConfig.fileStorageEnabled":        true,
	"dataConfig.fileStorageType":           "s3",
	"dataConfig.openSearchDefaultIndex":    "documents",
	"dataConfig.vectorIndexName":           "documents",
	"dataConfig.embeddingModelId":          "amazon.titan-embed-text-v1",
}

func applyDefaults(v *viper.Viper) {
	for key, value := range environmentDefaults {
		v.SetDefault(key, value)
	}
}
