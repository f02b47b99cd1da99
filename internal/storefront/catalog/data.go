package catalog

import "github.com/somascents/storefront/internal/storefront/model"

const placeholderImage = "/placeholder.svg?height=260&width=280"

var candles = []model.Product{
	{
		ID:            "1",
		Name:          "Shades of Nature",
		Price:         199,
		OriginalPrice: model.Rupees(249),
		Image:         "/candle-images/shades-of-nature/IMG_20250910_173935.jpg",
		Images: []string{
			"/candle-images/shades-of-nature/IMG_20250910_173935.jpg",
			"/candle-images/shades-of-nature/IMG_20250910_173937.jpg",
			"/candle-images/shades-of-nature/IMG_20250910_173942.jpg",
			"/candle-images/shades-of-nature/IMG_20250910_173946.jpg",
		},
		Description: "A beautifully crafted jar candle with a romantic rose fragrance, perfect for creating a warm and inviting atmosphere.",
		Scent:       "Floral",
	},
	{
		ID:            "2",
		Name:          "Peony Jar Candle",
		Price:         200,
		OriginalPrice: model.Rupees(249),
		Image:         "/peony-jar-candle.jpg",
		Images: []string{
			"/peony-jar-candle.jpg",
			"/small-peony-candle.jpg",
			"/lavender-marble-jar-candle.jpg",
		},
		Description: "This elegant peony-scented jar candle combines floral and rose notes to bring a touch of sophistication to any space.",
		Scent:       "Floral, Rose",
	},
	{
		ID:            "3",
		Name:          "Jar of Hearts",
		Price:         250,
		OriginalPrice: model.Rupees(299),
		Image:         "/jar-of-hearts-candle.jpg",
		Images: []string{
			"/jar-of-hearts-candle.jpg",
			"/heart-of-roses-candle.jpg",
			"/blooming-heart-tin-candle.jpg",
			"/elegant-floral-candle-set.jpg",
		},
		Description: "A luxurious candle with a blend of vanilla and floral scents, ideal for adding warmth and elegance to your home.",
		Scent:       "Vanilla, Floral",
	},
	{
		ID:          "4",
		Name:        "Small Peony Candle",
		Price:       79,
		Image:       "/small-peony-candle.jpg",
		Description: "A compact candle with a delightful mix of floral, rose, and lavender scents, perfect for small spaces or gifting.",
		Scent:       "Floral, Rose, Lavender",
	},
	{
		ID:          "5",
		Name:        "Lavender Marble Jar Candle",
		Price:       249,
		Image:       "/lavender-marble-jar-candle.jpg",
		Description: "A soothing lavender-scented jar candle with a marble finish, designed to promote relaxation and tranquility.",
		Scent:       "Lavender",
	},
	{
		ID:          "6",
		Name:        "Heart of Roses",
		Price:       79,
		Image:       "/heart-of-roses-candle.jpg",
		Description: "A charming small candle infused with the classic scent of roses, ideal for romantic settings or thoughtful gifts.",
		Scent:       "Rose",
	},
	{
		ID:          "7",
		Name:        "Scented Candles Bouquet",
		Price:       499,
		Image:       "/scented-candles-bouquet.jpg",
		Description: "A stunning bouquet of scented candles with a floral fragrance, perfect as a centerpiece or luxurious gift.",
		Scent:       "Floral",
	},
	{
		ID:            "8",
		Name:          "Mothi Choor Laddu Candles",
		Price:         200,
		OriginalPrice: model.Rupees(299),
		Image:         "/mothi-choor-laddu-candles.jpg",
		Description:   "A pack of four candles inspired by the sweet aroma of mothi choor laddu, offering a warm vanilla scent.",
		Scent:         "Vanilla",
	},
	{
		ID:          "9",
		Name:        "Mini Bubble Candles",
		Price:       199,
		Image:       "/mini-bubble-candles.jpg",
		Description: "A pack of three mini bubble candles with a blend of floral, vanilla, rose, and lavender scents for a versatile ambiance.",
		Scent:       "Floral, Vanilla, Rose, Lavender",
	},
	{
		ID:            "10",
		Name:          "Blooming Heart Tin Candle",
		Price:         250,
		OriginalPrice: model.Rupees(349),
		Image:         "/blooming-heart-tin-candle.jpg",
		Description:   "A heart-shaped tin candle with floral and rose notes, designed to add a touch of romance to any setting.",
		Scent:         "Floral, Rose",
	},
	{
		ID:          "11",
		Name:        "Tulip and Daisy Candle Bouquet",
		Price:       99,
		Image:       "/tulip-and-daisy-candle-bouquet.jpg",
		Description: "A single candle with a vibrant floral scent, inspired by tulips and daisies, perfect for a fresh and lively atmosphere.",
		Scent:       "Floral",
	},
	{
		ID:          "12",
		Name:        "Daisy Marble Candle",
		Price:       249,
		Image:       "/daisy-marble-candle.jpg",
		Description: "A beautifully designed marble candle with a refreshing floral daisy scent, ideal for modern home decor.",
		Scent:       "Floral",
	},
	{
		ID:          "13",
		Name:        "Scented Floating Daisy Candles",
		Price:       299,
		Image:       "/scented-floating-daisy-candles.jpg",
		Description: "A pack of six floating candles with a floral daisy fragrance, perfect for creating a serene and elegant ambiance.",
		Scent:       "Floral",
	},
	{
		ID:            "14",
		Name:          "Luxury Marble Jar Candle",
		Price:         299,
		OriginalPrice: model.Rupees(399),
		Image:         "/luxury-marble-jar-candle.jpg",
		Description:   "An elegant marble jar candle with a sophisticated design, perfect for adding a touch of luxury to any room.",
		Scent:         "Sandalwood, Vanilla",
	},
	{
		ID:            "15",
		Name:          "Elegant Floral Candle Set",
		Price:         319,
		OriginalPrice: model.Rupees(399),
		Image:         "/elegant-floral-candle-set.jpg",
		Description:   "A beautiful set of floral-designed candles that bring a touch of nature and elegance to your home decor.",
		Scent:         "Rose, Jasmine",
	},
	{
		ID:            "16",
		Name:          "Scented Diya Candle",
		Price:         45,
		OriginalPrice: model.Rupees(50),
		PackPrice:     model.Rupees(160),
		Image:         placeholderImage,
		Description:   "Beautiful scented diya candles, perfect for festive occasions and home decoration. Single piece ₹45, pack of 4 for ₹160.",
		Scent:         "Customizable",
	},
	{
		ID:            "17",
		Name:          "Scented T-Light Candles",
		Price:         278,
		OriginalPrice: model.Rupees(300),
		Image:         placeholderImage,
		Description:   "Pack of 6 scented t-light candles, perfect for creating a warm and inviting atmosphere in any room.",
		Scent:         "Customizable",
	},
	{
		ID:          "18",
		Name:        "Rose Teddy Candle",
		Price:       150,
		Image:       placeholderImage,
		Description: "Adorable rose-scented teddy bear shaped candle, perfect for gifting and adding a cute touch to your decor.",
		Scent:       "Rose, Customizable",
	},
	{
		ID:            "19",
		Name:          "Motichoor Laddu Candle",
		Price:         199,
		OriginalPrice: model.Rupees(250),
		Image:         placeholderImage,
		Description:   "Pack of 6 motichoor laddu shaped candles, perfect for festive occasions and celebrations.",
		Scent:         "Sweet, Customizable",
	},
	{
		ID:            "20",
		Name:          "Scented Modak Candle",
		Price:         250,
		OriginalPrice: model.Rupees(300),
		Image:         placeholderImage,
		Description:   "Pack of 9 scented modak shaped candles, ideal for festivals and special occasions.",
		Scent:         "Sweet, Customizable",
	},
	{
		ID:          "21",
		Name:        "Shades of Nature Scented Candles",
		Price:       249,
		Image:       placeholderImage,
		Description: "Beautiful layered candles inspired by the colors of nature, perfect for adding a touch of elegance to any room.",
		Scent:       "Natural, Customizable",
	},
	{
		ID:          "22",
		Name:        "Combo 2Diya+2Laddu Candles",
		Price:       150,
		Image:       placeholderImage,
		Description: "Combination pack of 2 diya candles and 2 laddu candles, perfect for festive occasions and celebrations.",
		Scent:       "Customizable",
	},
}

var bestSellers = []model.BestSeller{
	{
		ID:          "bs1",
		Name:        "Scented Candles Bouquet",
		Category:    "Candles",
		Price:       499,
		Image:       placeholderImage,
		Description: "A stunning bouquet of scented candles with a floral fragrance, perfect as a centerpiece or luxurious gift.",
		Scent:       "Floral",
	},
	{
		ID:            "bs2",
		Name:          "Luxury Marble Jar Candle",
		Category:      "Premium",
		Price:         299,
		OriginalPrice: model.Rupees(399),
		Image:         placeholderImage,
		Description:   "An elegant marble jar candle with a sophisticated design, perfect for adding a touch of luxury to any room.",
		Scent:         "Sandalwood, Vanilla",
	},
	{
		ID:            "bs3",
		Name:          "Elegant Floral Candle Set",
		Category:      "Gift Sets",
		Price:         319,
		OriginalPrice: model.Rupees(399),
		Image:         placeholderImage,
		Description:   "A beautiful set of floral-designed candles that bring a touch of nature and elegance to your home decor.",
		Scent:         "Rose, Jasmine",
	},
}
