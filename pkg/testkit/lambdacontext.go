package testkit

import "fmt"

// LambdaContext mimics the execution context object a Lambda handler
// receives.
type LambdaContext struct {
	FunctionName       string
	MemoryLimitInMB    int
	InvokedFunctionARN string
	AWSRequestID       string
	LogGroupName       string
	LogStreamName      string

	remainingMillis int64
}

// NewLambdaContext builds a mock Lambda context. Zero values fall back to
// function "test-function", 512 MB and a 30 second timeout.
func NewLambdaContext(functionName string, memoryLimitMB, timeoutSeconds int) *LambdaContext {
	if functionName == "" {
		functionName = "test-function"
	}
	if memoryLimitMB == 0 {
		memoryLimitMB = 512
	}
	if timeoutSeconds == 0 {
		timeoutSeconds = 30
	}

	return &LambdaContext{
		FunctionName:       functionName,
		MemoryLimitInMB:    memoryLimitMB,
		InvokedFunctionARN: fmt.Sprintf("arn:aws:lambda:us-east-1:123456789012:function:%s", functionName),
		AWSRequestID:       "test-request-id",
		LogGroupName:       fmt.Sprintf("/aws/lambda/%s", functionName),
		LogStreamName:      "test-stream",
		remainingMillis:    int64(timeoutSeconds) * 1000,
	}
}

// RemainingTimeInMillis returns the configured remaining execution time.
func (c *LambdaContext) RemainingTimeInMillis() int64 {
	return c.remainingMillis
}
