package configs

import "fmt"

// Defaults used when the corresponding environment variable is unset or
// empty.
const (
	DefaultMongoHost = "localhost"
	DefaultMongoPort = "27017"
	DefaultMongoName = "dd_db"
)

// Mongo holds the pieces of the MongoDB connection URL. The variables are
// not prefixed: MONGO_HOST, MONGO_PORT and DB_NAME are read as is. Port is
// kept as a string so whatever the environment supplies ends up in the URL
// unchanged; the driver rejects it at connect time if it is invalid.
type Mongo struct {
	Host string `env:"MONGO_HOST" envDefault:"localhost"`
	Port string `env:"MONGO_PORT" envDefault:"27017"`
	// Name is the database the application works in.
	Name string `env:"DB_NAME" envDefault:"dd_db"`
}

// URL returns the connection string in the form
// mongodb://<host>:<port>/<name>. Empty fields are replaced by their
// defaults, so a zero Mongo yields mongodb://localhost:27017/dd_db. Values
// are not escaped or validated.
func (c Mongo) URL() string {
	c = c.withDefaults()
	return fmt.Sprintf("mongodb://%s:%s/%s", c.Host, c.Port, c.Name)
}

// Database returns the database name URL points at.
func (c Mongo) Database() string {
	return c.withDefaults().Name
}

func (c Mongo) withDefaults() Mongo {
	if c.Host == "" {
		c.Host = DefaultMongoHost
	}
	if c.Port == "" {
		c.Port = DefaultMongoPort
	}
	if c.Name == "" {
		c.Name = DefaultMongoName
	}
	return c
}
