package testkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDynamoDBItem(t *testing.T) {
	item := map[string]interface{}{
		"a": 1,
		"b": "x",
		"c": true,
		"d": nil,
	}

	expected := map[string]interface{}{
		"a": map[string]interface{}{"N": "1"},
		"b": map[string]interface{}{"S": "x"},
		"c": map[string]interface{}{"BOOL": true},
		"d": map[string]interface{}{"NULL": true},
	}

	if diff := cmp.Diff(expected, DynamoDBItem(item)); diff != "" {
		t.Errorf("DynamoDBItem mismatch (-want +got):\n%s", diff)
	}
}

func TestDynamoDBItemNested(t *testing.T) {
	item := map[string]interface{}{
		"profile": map[string]interface{}{
			"userId":  "test-user-123",
			"horizon": 14,
		},
		"festivals": []interface{}{"Diwali", 2023, false},
		"price":     12.5,
	}

	expected := map[string]interface{}{
		"profile": map[string]interface{}{
			"M": map[string]interface{}{
				"userId":  map[string]interface{}{"S": "test-user-123"},
				"horizon": map[string]interface{}{"N": "14"},
			},
		},
		"festivals": map[string]interface{}{
			"L": []interface{}{
				map[string]interface{}{"S": "Diwali"},
				map[string]interface{}{"N": "2023"},
				map[string]interface{}{"BOOL": false},
			},
		},
		"price": map[string]interface{}{"N": "12.5"},
	}

	if diff := cmp.Diff(expected, DynamoDBItem(item)); diff != "" {
		t.Errorf("DynamoDBItem mismatch (-want +got):\n%s", diff)
	}
}

func TestDynamoDBItemEmpty(t *testing.T) {
	assert.Empty(t, DynamoDBItem(map[string]interface{}{}))
}

func TestMockS3Object(t *testing.T) {
	content := "date,sku,quantity\n2023-10-01,SKU001,10"
	obj := MockS3Object("test-bucket", "uploads/sales.csv", content)

	assert.Equal(t, "test-bucket", obj.Bucket)
	assert.Equal(t, "uploads/sales.csv", obj.Key)
	assert.Equal(t, []byte(content), obj.Body)
	assert.Equal(t, len(content), obj.ContentLength)
	assert.Equal(t, "text/csv", obj.ContentType)
	assert.False(t, obj.LastModified.IsZero())
}
