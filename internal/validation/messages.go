package validation

const descriptionLength = "Description must be between 5 and 255 characters"

var description = map[string]string{
	"min": descriptionLength,
	"max": descriptionLength,
}

var categoryMessages = messages{
	"name": {
		"required": "Category name is required",
		"min":      "Category name must be between 2 and 50 characters",
		"max":      "Category name must be between 2 and 50 characters",
	},
	"description": description,
}

var productMessages = messages{
	"categoryId": {"required": "Category id is required"},
	"name": {
		"required": "Product name is required",
		"min":      "Product name must be between 2 and 50 characters",
		"max":      "Product name must be between 2 and 50 characters",
	},
	"unitCost": {
		"required": "Unit cost is required",
		"gte":      "Unit cost must be at least 1.00",
	},
	"unitPrice": {
		"required": "Unit price is required",
		"gte":      "Unit price must be at least 1.00",
	},
	"store":       {"gte": "Number of items in store cannot be negative"},
	"counter":     {"gte": "Number of items in counter cannot be negative"},
	"description": description,
}

var supplierMessages = messages{
	"name": {
		"required": "Supplier's name is required",
		"min":      "Supplier's name must be between 2 and 50 characters",
		"max":      "Supplier's name must be between 2 and 50 characters",
	},
	"phone": {
		"required": "Supplier's phone number is required",
		"len":      "A phone number must be 10 characters long",
		"numeric":  "A phone number must be numerical",
	},
	"email": {
		"min":   "Email must be between 5 and 40 characters long",
		"max":   "Email must be between 5 and 40 characters long",
		"email": "Please provide a valid email address",
	},
}

var quantity = map[string]string{
	"required": "Quantity of items is required",
	"gt":       "Quantity of items must be greater than 0",
}

var purchaseMessages = messages{
	"supplierId": {"required": "Supplier id is required"},
	"productId":  {"required": "Product id is required"},
	"quantity": {
		"required": "Quantity of items purchased is required",
		"gt":       "Quantity of items purchased must be greater than 0",
	},
	"unitCost":  productMessages["unitCost"],
	"unitPrice": productMessages["unitPrice"],
	"location": {
		"required": "Location is required",
		"oneof":    "Valid locations are 'store' or 'counter'",
	},
}

var saleMessages = messages{
	"productId": {"required": "Product id is required"},
	"quantity":  quantity,
}

var transferMessages = messages{
	"productId": {"required": "Product id is required"},
	"quantity":  quantity,
	"source": {
		"required": "Source location is required",
		"oneof":    "Valid source locations are 'store' or 'counter'",
	},
	"destination": {
		"required": "Destination location is required",
		"oneof":    "Valid destination locations are 'store' or 'counter'",
	},
}
