package scenario

const builtinYAML = `
name: walkthrough
description: literal construction, removal, front insertion and clear
initial: [10, 20, 30]
steps:
  - {op: at, index: 0, expect: {value: 10, size: 3}}
  - {op: at, index: 2, expect: {value: 30}}
  - {op: at, index: 3, expect: {error: out_of_range}}
  - {op: remove_at, index: 1, expect: {values: [10, 30], size: 2}}
  - {op: push_front, value: 5, expect: {values: [5, 10, 30], capacity: 3}}
  - {op: push_back, value: 40, expect: {values: [5, 10, 30, 40], capacity: 6}}
  - {op: pop_back, expect: {value: 40}}
  - {op: pop_front, expect: {value: 5, values: [10, 30]}}
  - {op: clear, expect: {size: 0, capacity: 6}}
  - {op: front, expect: {error: empty}}
  - {op: pop_back, expect: {error: empty}}
  - {op: remove_at, index: 0, expect: {error: out_of_range}}
`

// Builtin returns the walkthrough scenario shipped with dynvec.
func Builtin() *Scenario {
	sc, err := Parse([]byte(builtinYAML))
	if err != nil {
		panic(err)
	}
	return sc
}
