package interaction

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pointclick/common"
)

// Host applies the effects of a reaction script.
type Host interface {
	// Play switches the interacting character's animation state.
	Play(state string) bool
	// Say shows a line of text attributed to speaker.
	Say(speaker, text string)
}

const dispatchScript = `
interact(__engine)
`

// Interactable is a world object with an anchor pose the character walks to
// and faces before triggering it.
type Interactable struct {
	Name     string
	Location common.Pose
	// Animation played on interact when no script is attached.
	Animation string

	host     Host
	flags    *Flags
	compiled *tengo.Compiled
	count    int
}

func New(name string, location common.Pose, host Host, flags *Flags) *Interactable {
	if flags == nil {
		flags = NewFlags()
	}
	return &Interactable{
		Name:     name,
		Location: location,
		host:     host,
		flags:    flags,
	}
}

// LoadScript compiles a reaction script. The script must define
// `interact := func(engine) { ... }`.
func (i *Interactable) LoadScript(src []byte) error {
	script := tengo.NewScript(append(append([]byte{}, src...), dispatchScript...))
	if err := script.Add("__engine", map[string]any{}); err != nil {
		return fmt.Errorf("interaction: %s: %w", i.Name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("interaction: %s: compile: %w", i.Name, err)
	}
	i.compiled = compiled
	return nil
}

// SetHost replaces the host that receives reaction effects.
func (i *Interactable) SetHost(h Host) {
	i.host = h
}

// IsNil reports whether i is a nil pointer.
func (i *Interactable) IsNil() bool {
	return i == nil
}

func (i *Interactable) InteractionLocation() common.Pose {
	return i.Location
}

// Interact runs the reaction. Script failures are logged and dropped.
func (i *Interactable) Interact() {
	i.count++

	if i.compiled == nil {
		if i.host != nil && i.Animation != "" {
			i.host.Play(i.Animation)
		}
		return
	}

	if err := i.compiled.Set("__engine", i.engine()); err != nil {
		log.Printf("interaction: %s: bind engine: %v", i.Name, err)
		return
	}
	i.run()
}

// run executes the compiled script. The tengo VM re-panics Go runtime
// errors such as integer division by zero, so those are recovered here.
func (i *Interactable) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("interaction: %s: script panic: %v", i.Name, r)
		}
	}()
	if err := i.compiled.Run(); err != nil {
		log.Printf("interaction: %s: script error: %v", i.Name, err)
	}
}

// Count is the number of times Interact has been called.
func (i *Interactable) Count() int {
	return i.count
}

func (i *Interactable) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["name"] = &tengo.String{Value: i.Name}

	values["count"] = &tengo.UserFunction{Name: "count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(i.count)}, nil
	}}

	values["play"] = &tengo.UserFunction{Name: "play", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if i.host == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		state := strings.TrimSpace(objectAsString(args[0]))
		if state == "" || !i.host.Play(state) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["say"] = &tengo.UserFunction{Name: "say", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if i.host == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		i.host.Say(i.Name, objectAsString(args[0]))
		return tengo.TrueValue, nil
	}}

	values["get_flag"] = &tengo.UserFunction{Name: "get_flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if i.flags.Get(objectAsString(args[0])) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["set_flag"] = &tengo.UserFunction{Name: "set_flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		value := true
		if len(args) > 1 {
			value = !args[1].IsFalsy()
		}
		i.flags.Set(objectAsString(args[0]), value)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
