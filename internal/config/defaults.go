package config

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "trackswift",
	Pass: "trackswift",
	Name: "trackswift",
}

var defaultKafka = Kafka{
	Topic:   "carrier.shipment-status",
	GroupID: "trackswift-worker",
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default status-feed settings.
func DefaultKafka() Kafka {
	return defaultKafka
}
