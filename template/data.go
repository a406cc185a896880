package template

// Data maps variable names to substitution values.
// Keys and values are arbitrary text; a missing key is not an error.
type Data map[string]string

// NewData copies m into a new Data.
func NewData(m map[string]string) Data {
	d := make(Data, len(m))
	for k, v := range m {
		d[k] = v
	}
	return d
}

// Get returns the value for name and whether it was present.
func (d Data) Get(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}

// Merge returns a new Data holding d's entries overridden by other's.
// Neither d nor other is modified.
func (d Data) Merge(other Data) Data {
	merged := make(Data, len(d)+len(other))
	for k, v := range d {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// With returns a copy of d with name set to value.
func (d Data) With(name, value string) Data {
	return d.Merge(Data{name: value})
}
