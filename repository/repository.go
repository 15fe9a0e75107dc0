package repository

import "reflect"

// Option configures a MemoryRepository.
type Option func(config *repoConfig)

// WithIDField sets the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option {
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

type repoConfig struct {
	idFieldName string
}

// id are the types allowed as a primary key.
// Only integers are supported, as NextID derives the next id from the last entity.
type id interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

const panicIDNotSupported = "type of ID is not supported: "

// idOf reads the id field of entity via reflection.
func idOf[ID id](entity any, idFieldName string) ID { //nolint:ireturn // fp for generics
	val := reflect.Indirect(reflect.ValueOf(entity))

	if val.Kind() != reflect.Struct {
		panic("entity is not a struct: " + val.Kind().String())
	}

	idField := val.FieldByName(idFieldName)
	if !idField.IsValid() {
		panic("entity does not have the field with name: " + idFieldName)
	}

	var eid ID

	switch idField.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		eid = ID(idField.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		eid = ID(idField.Uint())
	default:
		panic(panicIDNotSupported + idField.Kind().String())
	}

	return eid
}
