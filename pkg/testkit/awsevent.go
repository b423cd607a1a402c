package testkit

import (
	"encoding/json"
	"fmt"
)

// APIGatewayEvent is the request envelope a Lambda handler receives from
// API Gateway's Lambda proxy integration.
type APIGatewayEvent struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path"`
	PathParameters        map[string]string `json:"pathParameters"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Headers               map[string]string `json:"headers"`
	Body                  string            `json:"body,omitempty"`
	RequestContext        RequestContext    `json:"requestContext"`
	IsBase64Encoded       bool              `json:"isBase64Encoded"`
}

// RequestContext carries per-request metadata including authorizer claims.
type RequestContext struct {
	RequestID  string     `json:"requestId"`
	Authorizer Authorizer `json:"authorizer"`
}

// Authorizer holds the JWT claims forwarded by the API Gateway authorizer.
type Authorizer struct {
	Claims map[string]string `json:"claims"`
}

// APIGatewayResponse is the response envelope a Lambda handler returns.
type APIGatewayResponse struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers,omitempty"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// EventParams selects the non-default parts of a mock event. Zero values
// fall back to: POST, path "/", JSON content type, and the test user claim.
type EventParams struct {
	Method      string
	Path        string
	PathParams  map[string]string
	QueryParams map[string]string
	Headers     map[string]string
	// Body is JSON-marshaled into the event body when non-nil.
	Body interface{}
}

// NewAPIGatewayEvent builds a mock API Gateway event for handler tests.
func NewAPIGatewayEvent(p EventParams) APIGatewayEvent {
	method := p.Method
	if method == "" {
		method = "POST"
	}
	path := p.Path
	if path == "" {
		path = "/"
	}
	headers := p.Headers
	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json"}
	}
	pathParams := p.PathParams
	if pathParams == nil {
		pathParams = map[string]string{}
	}
	queryParams := p.QueryParams
	if queryParams == nil {
		queryParams = map[string]string{}
	}

	body := ""
	if p.Body != nil {
		raw, err := json.Marshal(p.Body)
		if err != nil {
			panic(fmt.Sprintf("testkit: cannot marshal event body: %v", err))
		}
		body = string(raw)
	}

	return APIGatewayEvent{
		HTTPMethod:            method,
		Path:                  path,
		PathParameters:        pathParams,
		QueryStringParameters: queryParams,
		Headers:               headers,
		Body:                  body,
		RequestContext: RequestContext{
			RequestID: "test-request-id",
			Authorizer: Authorizer{
				Claims: map[string]string{"sub": "test-user-123"},
			},
		},
		IsBase64Encoded: false,
	}
}
