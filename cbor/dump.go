// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"fmt"
	"sort"
	"strings"
)

// Dump decodes data generically and renders it as an indented tree, one item
// per line. It is meant for inspecting stored records by hand.
func Dump(data []byte) (string, error) {
	var tmp any
	if _, err := Decode(data, &tmp); err != nil {
		return "", err
	}
	var sb strings.Builder
	dumpItem(&sb, tmp, "")
	return sb.String(), nil
}

func dumpItem(sb *strings.Builder, item any, indent string) {
	switch v := item.(type) {
	case uint64, int64:
		fmt.Fprintf(sb, "%s%#x (%d)\n", indent, v, v)
	case []byte:
		fmt.Fprintf(sb, "%s<bytes> 0x%x (length %d)\n", indent, v, len(v))
	case []any:
		fmt.Fprintf(sb, "%s[\n", indent)
		for _, val := range v {
			dumpItem(sb, val, indent+"  ")
		}
		fmt.Fprintf(sb, "%s]\n", indent)
	case map[any]any:
		fmt.Fprintf(sb, "%s{\n", indent)
		// Map order is random; sort on the rendered key for stable output
		keys := make([]string, 0, len(v))
		rendered := make(map[string]any, len(v))
		for key, val := range v {
			k := fmt.Sprintf("%#v", key)
			keys = append(keys, k)
			rendered[k] = val
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(sb, "%s  %s =>\n", indent, k)
			dumpItem(sb, rendered[k], indent+"    ")
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	default:
		fmt.Fprintf(sb, "%s%#v\n", indent, v)
	}
}
