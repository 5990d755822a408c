package cli

import (
	"context"
	"fmt"

	"recipekeeper/internal/models"
)

// ShowShoppingList prints the indexed shopping list.
func (a *App) ShowShoppingList(ctx context.Context) error {
	all := a.list.All()
	if len(all) == 0 {
		fmt.Fprintln(a.out, "Shopping list is empty")
		return nil
	}
	for i, ing := range all {
		fmt.Fprintf(a.out, "%3d  %s (%g)\n", i, ing.Name, ing.Amount)
	}
	return nil
}

// AddItem appends one entry to the shopping list.
func (a *App) AddItem(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	amount, err := GetNumber(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}

	a.list.Add(models.Ingredient{Name: name, Amount: amount})
	fmt.Fprintln(a.out, "Added")
	return nil
}

// EditItem replaces the entry at an index. The current value is shown first,
// mirroring the edit form's prefill.
func (a *App) EditItem(ctx context.Context) error {
	i, err := GetIndex(a.reader, "Item index", a.out)
	if err != nil {
		return err
	}
	current, err := a.list.Get(i)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Editing %s (%g)\n", current.Name, current.Amount)

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	amount, err := GetNumber(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}

	if err := a.list.Update(i, models.Ingredient{Name: name, Amount: amount}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated")
	return nil
}

// DeleteItem removes the entry at an index.
func (a *App) DeleteItem(ctx context.Context) error {
	i, err := GetIndex(a.reader, "Item index", a.out)
	if err != nil {
		return err
	}
	if err := a.list.Delete(i); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
