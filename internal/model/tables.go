package model

// Tables lists every model in migration order; series precede products
// because of the foreign key.
var Tables = []interface{}{
	&Series{},
	&Product{},
	&Admin{},
	&ContactMessage{},
}
