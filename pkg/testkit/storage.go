package testkit

import (
	"fmt"
	"strconv"
	"time"
)

// S3Object is a mock of the object shape returned by S3 GetObject.
type S3Object struct {
	Bucket        string
	Key           string
	Body          []byte
	ContentLength int
	ContentType   string
	LastModified  time.Time
}

// MockS3Object builds an in-memory S3 object holding CSV content.
func MockS3Object(bucket, key, content string) S3Object {
	return S3Object{
		Bucket:        bucket,
		Key:           key,
		Body:          []byte(content),
		ContentLength: len(content),
		ContentType:   "text/csv",
		LastModified:  time.Now(),
	}
}

// DynamoDBItem encodes a plain item into DynamoDB's tagged attribute-value
// format: S for strings, N for numerics (as strings), BOOL for booleans,
// M for nested maps, L for lists and NULL for nil values. Unknown types fall
// back to their string form.
func DynamoDBItem(item map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(item))
	for k, v := range item {
		out[k] = dynamoDBValue(v)
	}
	return out
}

func dynamoDBValue(v interface{}) map[string]interface{} {
	switch val := v.(type) {
	case nil:
		return map[string]interface{}{"NULL": true}
	case bool:
		return map[string]interface{}{"BOOL": val}
	case string:
		return map[string]interface{}{"S": val}
	case int:
		return map[string]interface{}{"N": strconv.Itoa(val)}
	case int32:
		return map[string]interface{}{"N": strconv.FormatInt(int64(val), 10)}
	case int64:
		return map[string]interface{}{"N": strconv.FormatInt(val, 10)}
	case float32:
		return map[string]interface{}{"N": strconv.FormatFloat(float64(val), 'f', -1, 32)}
	case float64:
		return map[string]interface{}{"N": strconv.FormatFloat(val, 'f', -1, 64)}
	case map[string]interface{}:
		nested := make(map[string]interface{}, len(val))
		for k, inner := range val {
			nested[k] = dynamoDBValue(inner)
		}
		return map[string]interface{}{"M": nested}
	case []interface{}:
		list := make([]interface{}, len(val))
		for i, inner := range val {
			list[i] = dynamoDBValue(inner)
		}
		return map[string]interface{}{"L": list}
	default:
		return map[string]interface{}{"S": fmt.Sprintf("%v", val)}
	}
}
