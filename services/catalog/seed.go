package catalog

import "github.com/MarcGrol/shopcart/services/stockapi"

const imageBaseURL = "https://rocketseat-cdn.s3-sa-east-1.amazonaws.com/modulo-redux/"

type seedProduct struct {
	product stockapi.Product
	amount  int
}

var seedProducts = []seedProduct{
	{
		product: stockapi.Product{ID: 1, Title: "Tênis de Caminhada Leve Confortável", Price: 179.9, Image: imageBaseURL + "tenis1.jpg"},
		amount:  3,
	},
	{
		product: stockapi.Product{ID: 2, Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", Price: 139.9, Image: imageBaseURL + "tenis2.jpg"},
		amount:  5,
	},
	{
		product: stockapi.Product{ID: 3, Title: "Tênis Adidas Duramo Lite 2.0", Price: 219.9, Image: imageBaseURL + "tenis3.jpg"},
		amount:  2,
	},
	{
		product: stockapi.Product{ID: 4, Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", Price: 139.9, Image: imageBaseURL + "tenis2.jpg"},
		amount:  1,
	},
	{
		product: stockapi.Product{ID: 5, Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", Price: 139.9, Image: imageBaseURL + "tenis2.jpg"},
		amount:  5,
	},
	{
		product: stockapi.Product{ID: 6, Title: "Tênis Adidas Duramo Lite 2.0", Price: 219.9, Image: imageBaseURL + "tenis3.jpg"},
		amount:  10,
	},
}
