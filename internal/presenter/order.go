// Package presenter maps loosely-shaped stored order documents onto the
// stable wire shape the frontends consume. Stored orders accumulated
// several historical field spellings; every fallback chain for those
// lives here and nowhere else.
package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order converts a raw order document into the API shape. It never
// fails: malformed numeric fields coerce to zero, missing text fields
// default to empty strings, and an absent status reads as "Pending".
// Running it on its own output yields the same output.
func Order(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}

	items := asSlice(doc["items"])
	normalized := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, normalizeItem(item))
	}

	return map[string]interface{}{
		"id":           serializeID(doc["_id"]),
		"order_id":     firstTruthy(asMap(doc), "orderId", "order_id"),
		"created_at":   serializeTime(doc["createdAt"]),
		"updated_at":   serializeTime(doc["updatedAt"]),
		"status":       normalizeStatus(doc["status"]),
		"items":        normalized,
		"shipping":     normalizeShipping(doc["shipping"]),
		"payment":      normalizePayment(doc["payment"]),
		"subtotal":     toNumber(doc["subtotal"]),
		"shipping_fee": toNumber(firstTruthy(asMap(doc), "shippingFee", "shipping_fee")),
		"total":        toNumber(doc["total"]),
	}
}

func normalizeStatus(value interface{}) string {
	if !truthy(value) {
		return "Pending"
	}
	text := stringify(value)
	if text == "" {
		return "Pending"
	}
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func normalizeItem(value interface{}) map[string]interface{} {
	item := asMap(value)

	price := item["price"]
	if !truthy(price) {
		price = 0
	}

	quantity := item["quantity"]
	if !truthy(quantity) {
		quantity = 0
	}
	quantity = coerceQuantity(quantity)

	subtotal, ok := item["subtotal"]
	if !ok || subtotal == nil {
		subtotal = toNumber(price) * toNumber(quantity)
	}

	return map[string]interface{}{
		"product_id": firstTruthy(item, "productId", "product_id", "id"),
		"name":       item["name"],
		"image":      firstTruthy(item, "image", "thumbnail"),
		"price":      toNumber(price),
		"quantity":   quantity,
		"subtotal":   toNumber(subtotal),
	}
}

func normalizeShipping(value interface{}) map[string]interface{} {
	shipping := asMap(value)
	return map[string]interface{}{
		"full_name": orEmpty(firstTruthy(shipping, "full_name", "fullName", "recipient")),
		"phone":     orEmpty(shipping["phone"]),
		"address":   orEmpty(shipping["address"]),
		"city":      orEmpty(shipping["city"]),
		"state":     orEmpty(shipping["state"]),
		"zip":       orEmpty(firstTruthy(shipping, "zip", "zipCode", "postalCode")),
		"country":   orEmpty(shipping["country"]),
		"note":      orEmpty(firstTruthy(shipping, "note", "notes")),
	}
}

func normalizePayment(value interface{}) map[string]interface{} {
	payment := asMap(value)

	method, _ := firstTruthy(payment, "method", "type").(string)
	if method != "" {
		// Short labels are acronyms (COD, UPI), longer ones are words.
		if len([]rune(method)) <= 4 {
			method = strings.ToUpper(method)
		} else {
			method = titleCase(method)
		}
	}

	status, _ := payment["status"].(string)
	if status != "" {
		status = titleCase(status)
	}

	return map[string]interface{}{"method": method, "status": status}
}

// toNumber coerces any price-like value to a float64, defaulting to 0.
func toNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceQuantity turns a quantity into an int when it safely can,
// leaving legacy oddities (fractional strings and the like) untouched.
func coerceQuantity(value interface{}) interface{} {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return v
		}
		return n
	default:
		return value
	}
}

func serializeID(value interface{}) interface{} {
	if id, ok := value.(primitive.ObjectID); ok {
		return id.Hex()
	}
	return value
}

func serializeTime(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case primitive.DateTime:
		return v.Time().Format(time.RFC3339)
	default:
		return value
	}
}

// firstTruthy returns the value of the first key holding a truthy
// value, or nil when none does.
func firstTruthy(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok && truthy(v) {
			return v
		}
	}
	return nil
}

func orEmpty(value interface{}) interface{} {
	if !truthy(value) {
		return ""
	}
	return value
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case primitive.A:
		return len(v) > 0
	case bson.M:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		return true
	}
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func asMap(value interface{}) map[string]interface{} {
	switch v := value.(type) {
	case bson.M:
		return v
	case map[string]interface{}:
		return v
	case bson.D:
		return v.Map()
	default:
		return map[string]interface{}{}
	}
}

func asSlice(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case primitive.A:
		return v
	case []bson.M:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	default:
		return nil
	}
}

// titleCase matches the word-capitalization the stored payment labels
// were written with: first letter of each word upper, the rest lower.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
