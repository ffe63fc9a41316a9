package utils

import (
	"encoding/json"
)

func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}

// RemarshalMap converts any json-serializable value into its generic object
// form. Values that do not encode to a JSON object yield an empty map.
func RemarshalMap(input interface{}) map[string]interface{} {
	output := map[string]interface{}{}
	err := Remarshal(input, &output)
	if err != nil {
		return map[string]interface{}{}
	}
	return output
}
