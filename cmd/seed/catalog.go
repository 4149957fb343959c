package main

import "kitchensync_backend/internal/feature/recipes/domain/entity"

// catalogRecipes は初期投入するキュレーション済みレシピです。
// タイトルをキーに冪等投入されるため、再実行しても重複しません。
var catalogRecipes = []entity.Recipe{
	{
		Title:       "Vegetable Stir Fry",
		Description: "A quick weeknight stir fry with whatever vegetables are on hand.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Broccoli", Quantity: "1", Unit: "head"},
			{Name: "Carrot", Quantity: "2", Unit: "pieces"},
			{Name: "Bell Pepper", Quantity: "1", Unit: "piece"},
			{Name: "Soy Sauce", Quantity: "3", Unit: "tbsp"},
			{Name: "Garlic", Quantity: "2", Unit: "cloves"},
			{Name: "Sesame Oil", Quantity: "1", Unit: "tbsp", Optional: true, Substitutes: []string{"Vegetable Oil"}},
		},
		Steps: []string{
			"Cut all vegetables into bite-sized pieces.",
			"Heat oil in a wok over high heat.",
			"Add garlic and stir for 30 seconds.",
			"Add vegetables and stir-fry for 5-7 minutes.",
			"Add soy sauce, toss, and serve over rice.",
		},
		DietaryTags: []string{"Vegetarian", "Vegan", "Dairy-Free"},
		MealTypes:   []string{"Lunch", "Dinner"},
		PrepTime:    10,
		CookTime:    10,
		Servings:    2,
	},
	{
		Title:       "Chicken Fried Rice",
		Description: "Leftover rice turned into a full meal.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Cooked Rice", Quantity: "3", Unit: "cups"},
			{Name: "Chicken Breast", Quantity: "1", Unit: "piece"},
			{Name: "Egg", Quantity: "2", Unit: "pieces"},
			{Name: "Soy Sauce", Quantity: "2", Unit: "tbsp"},
			{Name: "Green Onion", Quantity: "2", Unit: "stalks", Optional: true},
			{Name: "Frozen Peas", Quantity: "1/2", Unit: "cup", Optional: true},
		},
		Steps: []string{
			"Dice the chicken and cook through in a hot pan.",
			"Push chicken aside and scramble the eggs.",
			"Add rice, breaking up any clumps.",
			"Season with soy sauce and stir-fry for 3 minutes.",
			"Top with sliced green onion.",
		},
		DietaryTags: []string{"Dairy-Free"},
		MealTypes:   []string{"Lunch", "Dinner"},
		PrepTime:    10,
		CookTime:    15,
		Servings:    3,
	},
	{
		Title:       "Classic Tomato Pasta",
		Description: "Pantry-staple pasta with a simple tomato sauce.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Pasta", Quantity: "300", Unit: "g"},
			{Name: "Canned Tomatoes", Quantity: "1", Unit: "can"},
			{Name: "Garlic", Quantity: "3", Unit: "cloves"},
			{Name: "Olive Oil", Quantity: "2", Unit: "tbsp"},
			{Name: "Basil", Quantity: "1", Unit: "handful", Optional: true},
			{Name: "Parmesan", Quantity: "30", Unit: "g", Optional: true},
		},
		Steps: []string{
			"Boil pasta in salted water until al dente.",
			"Sauté garlic in olive oil until fragrant.",
			"Add canned tomatoes and simmer for 10 minutes.",
			"Toss pasta in the sauce with a splash of pasta water.",
			"Finish with basil and parmesan.",
		},
		DietaryTags: []string{"Vegetarian"},
		MealTypes:   []string{"Lunch", "Dinner"},
		PrepTime:    5,
		CookTime:    20,
		Servings:    3,
	},
	{
		Title:       "Overnight Oats",
		Description: "No-cook breakfast prepared the night before.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Rolled Oats", Quantity: "1/2", Unit: "cup"},
			{Name: "Milk", Quantity: "1/2", Unit: "cup", Substitutes: []string{"Almond Milk", "Oat Milk"}},
			{Name: "Yogurt", Quantity: "2", Unit: "tbsp", Optional: true},
			{Name: "Honey", Quantity: "1", Unit: "tbsp", Optional: true},
			{Name: "Berries", Quantity: "1/2", Unit: "cup", Optional: true},
		},
		Steps: []string{
			"Combine oats, milk, and yogurt in a jar.",
			"Stir in honey and refrigerate overnight.",
			"Top with berries before serving.",
		},
		DietaryTags: []string{"Vegetarian"},
		MealTypes:   []string{"Breakfast"},
		PrepTime:    5,
		CookTime:    0,
		Servings:    1,
	},
	{
		Title:       "Lentil Soup",
		Description: "Hearty one-pot soup built from dried pantry staples.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Red Lentils", Quantity: "1", Unit: "cup"},
			{Name: "Onion", Quantity: "1", Unit: "piece"},
			{Name: "Carrot", Quantity: "2", Unit: "pieces"},
			{Name: "Vegetable Broth", Quantity: "4", Unit: "cups", Substitutes: []string{"Water"}},
			{Name: "Cumin", Quantity: "1", Unit: "tsp"},
			{Name: "Lemon", Quantity: "1/2", Unit: "piece", Optional: true},
		},
		Steps: []string{
			"Sauté diced onion and carrot until soft.",
			"Add lentils, cumin, and broth.",
			"Simmer for 25 minutes until the lentils break down.",
			"Season and finish with a squeeze of lemon.",
		},
		DietaryTags: []string{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free"},
		MealTypes:   []string{"Lunch", "Dinner"},
		PrepTime:    10,
		CookTime:    30,
		Servings:    4,
	},
	{
		Title:       "Greek Salad",
		Description: "Fresh no-cook salad for hot days.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Cucumber", Quantity: "1", Unit: "piece"},
			{Name: "Tomato", Quantity: "3", Unit: "pieces"},
			{Name: "Red Onion", Quantity: "1/2", Unit: "piece"},
			{Name: "Feta Cheese", Quantity: "100", Unit: "g"},
			{Name: "Olives", Quantity: "1/2", Unit: "cup", Optional: true},
			{Name: "Olive Oil", Quantity: "3", Unit: "tbsp"},
		},
		Steps: []string{
			"Chop cucumber, tomatoes, and onion into chunks.",
			"Combine in a bowl with olives and cubed feta.",
			"Dress with olive oil and a pinch of oregano.",
		},
		DietaryTags: []string{"Vegetarian", "Gluten-Free"},
		MealTypes:   []string{"Lunch", "Snack"},
		PrepTime:    15,
		CookTime:    0,
		Servings:    2,
	},
	{
		Title:       "Banana Pancakes",
		Description: "Weekend pancakes sweetened with ripe bananas.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Banana", Quantity: "2", Unit: "pieces"},
			{Name: "Flour", Quantity: "1", Unit: "cup"},
			{Name: "Egg", Quantity: "1", Unit: "piece"},
			{Name: "Milk", Quantity: "3/4", Unit: "cup"},
			{Name: "Baking Powder", Quantity: "2", Unit: "tsp"},
			{Name: "Maple Syrup", Quantity: "2", Unit: "tbsp", Optional: true},
		},
		Steps: []string{
			"Mash the bananas in a large bowl.",
			"Whisk in egg and milk, then fold in flour and baking powder.",
			"Cook ladlefuls on a greased skillet until bubbles form, then flip.",
			"Serve with maple syrup.",
		},
		DietaryTags: []string{"Vegetarian"},
		MealTypes:   []string{"Breakfast", "Dessert"},
		PrepTime:    10,
		CookTime:    15,
		Servings:    2,
	},
	{
		Title:       "Beef Tacos",
		Description: "Build-your-own tacos with seasoned ground beef.",
		Ingredients: []entity.RecipeIngredient{
			{Name: "Ground Beef", Quantity: "400", Unit: "g"},
			{Name: "Taco Shells", Quantity: "8", Unit: "pieces", Substitutes: []string{"Tortillas"}},
			{Name: "Onion", Quantity: "1", Unit: "piece"},
			{Name: "Tomato", Quantity: "2", Unit: "pieces"},
			{Name: "Cheddar Cheese", Quantity: "100", Unit: "g", Optional: true},
			{Name: "Lettuce", Quantity: "1/4", Unit: "head", Optional: true},
		},
		Steps: []string{
			"Brown the beef with diced onion.",
			"Season with chili powder, cumin, and salt.",
			"Warm the taco shells.",
			"Assemble with beef, tomato, cheese, and lettuce.",
		},
		DietaryTags: []string{},
		MealTypes:   []string{"Dinner"},
		PrepTime:    15,
		CookTime:    15,
		Servings:    4,
	},
}
