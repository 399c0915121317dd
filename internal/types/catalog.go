package types

// Catalog is an insertion-ordered map of entity name to entity.
//
// Registration order is the order in which a name was first declared. A
// redeclared name keeps its original position; only its field list resets.
type Catalog struct {
	order    []string
	entities map[string]*Entity
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entities: make(map[string]*Entity),
	}
}

// Register declares an entity, resetting the field list of an existing one.
func (c *Catalog) Register(name string) *Entity {
	if e, ok := c.entities[name]; ok {
		e.Fields = nil
		return e
	}

	e := &Entity{Name: name}
	c.entities[name] = e
	c.order = append(c.order, name)
	return e
}

// Get returns the entity registered under name.
func (c *Catalog) Get(name string) (*Entity, bool) {
	e, ok := c.entities[name]
	return e, ok
}

// Has reports whether name is a registered entity.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entities[name]
	return ok
}

// Entities returns the entities in registration order.
func (c *Catalog) Entities() []*Entity {
	result := make([]*Entity, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.entities[name])
	}
	return result
}

// Len returns the number of registered entities.
func (c *Catalog) Len() int {
	return len(c.order)
}
