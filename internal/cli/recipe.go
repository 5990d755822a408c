package cli

import (
	"context"
	"fmt"

	"recipekeeper/internal/models"
)

// Fetch pulls the remote recipe collection into the repository.
func (a *App) Fetch(ctx context.Context) error {
	fetched, err := a.syncGW.FetchAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Fetched %d recipes\n", len(fetched))
	return nil
}

// Store pushes the repository wholesale to the remote document.
func (a *App) Store(ctx context.Context) error {
	if err := a.syncGW.StoreAll(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stored %d recipes\n", a.repo.Len())
	return nil
}

// ListRecipes prints an indexed overview of the repository.
func (a *App) ListRecipes(ctx context.Context) error {
	all := a.repo.All()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No recipes. Try 'fetch' or 'addrecipe'.")
		return nil
	}
	for i, r := range all {
		fmt.Fprintf(a.out, "%3d  %s — %s\n", i, r.Name, r.Description)
	}
	return nil
}

// ShowRecipe prints one recipe with its ingredients.
func (a *App) ShowRecipe(ctx context.Context) error {
	i, err := GetIndex(a.reader, "Recipe index", a.out)
	if err != nil {
		return err
	}
	r, err := a.repo.Get(i)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s\n", r.Name, r.Description)
	if r.ImagePath != "" {
		fmt.Fprintf(a.out, "Image: %s\n", r.ImagePath)
	}
	for _, ing := range r.Ingredients {
		fmt.Fprintf(a.out, "  - %s (%g)\n", ing.Name, ing.Amount)
	}
	return nil
}

// AddRecipe interactively builds a recipe and appends it.
func (a *App) AddRecipe(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	imagePath, err := GetSimpleText(a.reader, "Image path (optional)", a.out)
	if err != nil {
		return err
	}

	recipe := models.Recipe{Name: name, Description: description, ImagePath: imagePath}
	for {
		ingName, err := GetSimpleText(a.reader, "Ingredient name (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if ingName == "" {
			break
		}
		amount, err := GetNumber(a.reader, "Amount", a.out)
		if err != nil {
			return err
		}
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{Name: ingName, Amount: amount})
	}

	a.repo.Add(recipe)
	fmt.Fprintf(a.out, "Added %q\n", recipe.Name)
	return nil
}

// DeleteRecipe removes a recipe by index.
func (a *App) DeleteRecipe(ctx context.Context) error {
	i, err := GetIndex(a.reader, "Recipe index", a.out)
	if err != nil {
		return err
	}
	if err := a.repo.Delete(i); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// ToShoppingList copies a recipe's ingredients onto the shopping list.
func (a *App) ToShoppingList(ctx context.Context) error {
	i, err := GetIndex(a.reader, "Recipe index", a.out)
	if err != nil {
		return err
	}
	r, err := a.repo.Get(i)
	if err != nil {
		return err
	}
	a.list.AddAll(r.Ingredients)
	fmt.Fprintf(a.out, "Added %d ingredients to the shopping list\n", len(r.Ingredients))
	return nil
}
