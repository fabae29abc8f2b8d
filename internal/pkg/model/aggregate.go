package model

import (
	"fmt"
	"sort"
)

// Container is the root parameter map or the parameter map of one group.
// It references the document, modifications are visible in the RemoteConfig.
type Container struct {
	group      string
	parameters map[string]*Parameter
}

type ParameterNotFoundError struct {
	Name string
}

func (e ParameterNotFoundError) Error() string {
	return fmt.Sprintf(`parameter "%s" not found`, e.Name)
}

// ParameterEntry is a parameter with its name and the group it belongs to.
type ParameterEntry struct {
	Name      string
	Group     string
	Parameter *Parameter
}

func (c Container) GroupName() string {
	return c.group
}

func (c Container) IsRoot() bool {
	return c.group == ""
}

func (c Container) Get(name string) (*Parameter, bool) {
	p, found := c.parameters[name]
	return p, found
}

func (c Container) Set(name string, p *Parameter) {
	c.parameters[name] = p
}

func (c Container) Remove(name string) {
	delete(c.parameters, name)
}

// Root returns the container of parameters without a group.
func (c *RemoteConfig) Root() Container {
	if c.Parameters == nil {
		c.Parameters = make(map[string]*Parameter)
	}
	return Container{parameters: c.Parameters}
}

// Group returns the container of the group, the group is created if it does not exist.
func (c *RemoteConfig) Group(name, description string) Container {
	if name == "" {
		return c.Root()
	}
	if c.ParameterGroups == nil {
		c.ParameterGroups = make(map[string]*ParameterGroup)
	}
	group := c.ParameterGroups[name]
	if group == nil {
		group = &ParameterGroup{Description: description}
		c.ParameterGroups[name] = group
	}
	if group.Parameters == nil {
		group.Parameters = make(map[string]*Parameter)
	}
	return Container{group: name, parameters: group.Parameters}
}

// ContainerOf returns the container holding the parameter: the root or exactly one group.
func (c *RemoteConfig) ContainerOf(name string) (Container, bool) {
	if _, found := c.Parameters[name]; found {
		return c.Root(), true
	}
	for _, groupName := range c.GroupNames() {
		if _, found := c.ParameterGroups[groupName].Parameters[name]; found {
			return c.Group(groupName, ""), true
		}
	}
	return Container{}, false
}

// Get returns the parameter and the name of its group, "" for the root.
func (c *RemoteConfig) Get(name string) (*Parameter, string, bool) {
	container, found := c.ContainerOf(name)
	if !found {
		return nil, "", false
	}
	p, _ := container.Get(name)
	return p, container.GroupName(), true
}

// Insert replaces the parameter in its current container, a new parameter is inserted into the root.
func (c *RemoteConfig) Insert(name string, p *Parameter) {
	container, found := c.ContainerOf(name)
	if !found {
		container = c.Root()
	}
	container.Set(name, p)
}

// InsertIntoGroup removes the parameter from any container and inserts it into the group.
// The group is created with the description if it does not exist. Empty group means the root.
func (c *RemoteConfig) InsertIntoGroup(group, description, name string, p *Parameter) {
	if container, found := c.ContainerOf(name); found {
		container.Remove(name)
	}
	c.Group(group, description).Set(name, p)
}

// Remove deletes the parameter and returns it with the name of its group.
func (c *RemoteConfig) Remove(name string) (*Parameter, string, error) {
	container, found := c.ContainerOf(name)
	if !found {
		return nil, "", ParameterNotFoundError{Name: name}
	}
	p, _ := container.Get(name)
	container.Remove(name)
	return p, container.GroupName(), nil
}

// Move removes the parameter and inserts it into the group, empty group means the root.
func (c *RemoteConfig) Move(name, group, description string) error {
	p, _, err := c.Remove(name)
	if err != nil {
		return err
	}
	c.Group(group, description).Set(name, p)
	return nil
}

// ParameterNames returns names from the root and all groups.
func (c *RemoteConfig) ParameterNames() map[string]struct{} {
	out := make(map[string]struct{})
	for name := range c.Parameters {
		out[name] = struct{}{}
	}
	for _, group := range c.ParameterGroups {
		if group == nil {
			continue
		}
		for name := range group.Parameters {
			out[name] = struct{}{}
		}
	}
	return out
}

// GroupNames returns sorted names of the groups, null groups are skipped.
func (c *RemoteConfig) GroupNames() []string {
	out := make([]string, 0, len(c.ParameterGroups))
	for name, group := range c.ParameterGroups {
		if group == nil {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Entries returns all parameters, root parameters first, then groups, sorted by name.
func (c *RemoteConfig) Entries() []ParameterEntry {
	var out []ParameterEntry
	for _, name := range sortedKeys(c.Parameters) {
		out = append(out, ParameterEntry{Name: name, Parameter: c.Parameters[name]})
	}
	for _, group := range c.GroupNames() {
		params := c.ParameterGroups[group].Parameters
		for _, name := range sortedKeys(params) {
			out = append(out, ParameterEntry{Name: name, Group: group, Parameter: params[name]})
		}
	}
	return out
}

func (c *RemoteConfig) ConditionByName(name string) (Condition, bool) {
	for _, condition := range c.Conditions {
		if condition.Name == name {
			return condition, true
		}
	}
	return Condition{}, false
}

func (c *RemoteConfig) HasCondition(name string) bool {
	_, found := c.ConditionByName(name)
	return found
}

// ConditionNames returns names in the document order.
func (c *RemoteConfig) ConditionNames() []string {
	out := make([]string, 0, len(c.Conditions))
	for _, condition := range c.Conditions {
		out = append(out, condition.Name)
	}
	return out
}

// AddCondition appends the condition, an existing condition with the same name is kept.
func (c *RemoteConfig) AddCondition(condition Condition) bool {
	if c.HasCondition(condition.Name) {
		return false
	}
	c.Conditions = append(c.Conditions, condition)
	return true
}

// Clone returns a deep copy of the document.
func (c *RemoteConfig) Clone() *RemoteConfig {
	out := &RemoteConfig{}
	if c.Conditions != nil {
		out.Conditions = append([]Condition{}, c.Conditions...)
	}
	if c.Parameters != nil {
		out.Parameters = cloneParameters(c.Parameters)
	}
	if c.ParameterGroups != nil {
		out.ParameterGroups = make(map[string]*ParameterGroup, len(c.ParameterGroups))
		for name, group := range c.ParameterGroups {
			if group == nil {
				continue
			}
			clone := &ParameterGroup{Description: group.Description}
			if group.Parameters != nil {
				clone.Parameters = cloneParameters(group.Parameters)
			}
			out.ParameterGroups[name] = clone
		}
	}
	return out
}

func cloneParameters(in map[string]*Parameter) map[string]*Parameter {
	out := make(map[string]*Parameter, len(in))
	for name, p := range in {
		out[name] = p.Clone()
	}
	return out
}

func sortedKeys(m map[string]*Parameter) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
