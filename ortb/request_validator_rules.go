package ortb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/rules"
)

// node is a located value in the request JSON together with its field path label, such as
// request.imp[0].pmp.
type node struct {
	label    string
	value    []byte
	dataType jsonparser.ValueType
}

func newRootNode(data []byte) node {
	return node{label: "request", value: data, dataType: jsonparser.Object}
}

// locate resolves a dotted path below n. Arrays met before the last segment fan out so the path
// continues into every element. With expandLast an array at the last segment fans out as well.
func locate(n node, path []string, expandLast bool) []node {
	if len(path) == 0 {
		return []node{n}
	}
	if n.dataType != jsonparser.Object {
		return nil
	}

	value, dataType, _, err := jsonparser.Get(n.value, path[0])
	if err != nil {
		return nil
	}
	child := node{label: n.label + "." + path[0], value: value, dataType: dataType}

	if dataType != jsonparser.Array || (len(path) == 1 && !expandLast) {
		return locate(child, path[1:], expandLast)
	}

	var found []node
	index := 0
	jsonparser.ArrayEach(value, func(elem []byte, elemType jsonparser.ValueType, _ int, _ error) {
		element := node{label: fmt.Sprintf("%s[%d]", child.label, index), value: elem, dataType: elemType}
		found = append(found, locate(element, path[1:], expandLast)...)
		index++
	})
	return found
}

// containers returns every object instance of a scope path, e.g. each element of imp for "imp"
// or each deal of every impression for "imp.pmp.deals".
func containers(root node, scope string) []node {
	var found []node
	for _, n := range locate(root, rules.SplitPath(scope), true) {
		if n.dataType == jsonparser.Object {
			found = append(found, n)
		}
	}
	return found
}

// isPresent treats null, empty strings and empty arrays as absent.
func isPresent(n node) bool {
	switch n.dataType {
	case jsonparser.NotExist, jsonparser.Null, jsonparser.Unknown:
		return false
	case jsonparser.String:
		return len(n.value) > 0
	case jsonparser.Array:
		count := 0
		jsonparser.ArrayEach(n.value, func(_ []byte, _ jsonparser.ValueType, _ int, _ error) {
			count++
		})
		return count > 0
	default:
		return true
	}
}

func fieldPresent(container node, field string) bool {
	for _, n := range locate(container, rules.SplitPath(field), false) {
		if isPresent(n) {
			return true
		}
	}
	return false
}

func valueEquals(n node, expected json.RawMessage) bool {
	raw := n.value
	if n.dataType == jsonparser.String {
		raw = make([]byte, 0, len(n.value)+2)
		raw = append(raw, '"')
		raw = append(raw, n.value...)
		raw = append(raw, '"')
	}

	var got, want interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		return false
	}
	if err := json.Unmarshal(expected, &want); err != nil {
		return false
	}
	return reflect.DeepEqual(got, want)
}

func triggered(container node, trigger *rules.Trigger) bool {
	if trigger == nil {
		return true
	}

	for _, n := range locate(container, rules.SplitPath(trigger.Field), false) {
		if len(trigger.Equals) == 0 {
			if isPresent(n) {
				return true
			}
		} else if valueEquals(n, trigger.Equals) {
			return true
		}
	}
	return false
}

func describeTrigger(container node, trigger *rules.Trigger) string {
	if trigger == nil {
		return ""
	}
	if len(trigger.Equals) == 0 {
		return fmt.Sprintf(" when %s.%s is present", container.label, trigger.Field)
	}
	return fmt.Sprintf(" when %s.%s is %s", container.label, trigger.Field, bytes.TrimSpace(trigger.Equals))
}

func evaluateMutualExclusions(registry *rules.Registry, root node) []error {
	var errL []error
	for _, rule := range registry.MutualExclusions {
		errL = append(errL, checkMutualExclusion(root, rule)...)
	}
	for _, rule := range registry.ScopedMutualExclusions {
		for _, container := range containers(root, rule.Scope) {
			errL = append(errL, checkMutualExclusion(container, rule.MutualExclusion)...)
		}
	}
	return errL
}

func checkMutualExclusion(container node, rule rules.MutualExclusion) []error {
	var present []string
	setsPresent := 0
	for _, set := range rule.Sets() {
		found := false
		for _, field := range set {
			if fieldPresent(container, field) {
				present = append(present, field)
				found = true
			}
		}
		if found {
			setsPresent++
		}
	}
	if setsPresent < 2 {
		return nil
	}

	message := fmt.Sprintf("%s has mutually exclusive fields %s; only one may be present", container.label, quoteJoin(present))
	if len(rule.Groups) > 0 {
		message = fmt.Sprintf("%s has mutually exclusive fields %s; only one of %s may be present", container.label, quoteJoin(present), describeGroups(rule.Groups))
	}
	if rule.Level() == errortypes.SeverityWarning {
		return []error{&errortypes.Warning{Message: message, WarningCode: errortypes.MutualExclusionWarningCode}}
	}
	return []error{&errortypes.InvalidRequest{Message: message, ErrorCode: errortypes.MutualExclusionErrorCode}}
}

func evaluateConditionalRequirements(registry *rules.Registry, root node) []error {
	var errL []error
	for _, rule := range registry.ConditionalRequirements {
		errL = append(errL, checkConditionalRequirement(root, rule)...)
	}
	for _, rule := range registry.ScopedConditionalRequirements {
		for _, container := range containers(root, rule.Scope) {
			errL = append(errL, checkConditionalRequirement(container, rule.ConditionalRequirement)...)
		}
	}
	return errL
}

func checkConditionalRequirement(container node, rule rules.ConditionalRequirement) []error {
	if !triggered(container, rule.Trigger) {
		return nil
	}

	var errL []error
	condition := describeTrigger(container, rule.Trigger)
	for _, field := range rule.Required {
		if !fieldPresent(container, field) {
			errL = append(errL, &errortypes.InvalidRequest{
				Message:   fmt.Sprintf("%s.%s is required%s", container.label, field, condition),
				ErrorCode: errortypes.MissingRequiredFieldErrorCode,
			})
		}
	}
	for _, field := range rule.Recommended {
		if !fieldPresent(container, field) {
			errL = append(errL, &errortypes.Warning{
				Message:     fmt.Sprintf("%s.%s is recommended%s", container.label, field, condition),
				WarningCode: errortypes.MissingRecommendedFieldWarningCode,
			})
		}
	}
	return errL
}

func evaluateDeprecatedFields(registry *rules.Registry, root node) []error {
	var errL []error
	for _, rule := range registry.DeprecatedFields {
		for _, n := range locate(root, rules.SplitPath(rule.Field), false) {
			if !isPresent(n) {
				continue
			}

			message := n.label + " is deprecated"
			if len(rule.Replacement) > 0 {
				message += fmt.Sprintf("; use %s instead", quoteJoin(rule.Replacement))
			}
			errL = append(errL, &errortypes.Warning{Message: message, WarningCode: errortypes.DeprecatedFieldWarningCode})
		}
	}
	return errL
}

func describeGroups(groups [][]string) string {
	described := make([]string, len(groups))
	for i, group := range groups {
		described[i] = "[" + quoteJoin(group) + "]"
	}
	return strings.Join(described, " or ")
}

func quoteJoin(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = strconv.Quote(f)
	}
	return strings.Join(quoted, ", ")
}
