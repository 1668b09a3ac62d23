package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
)

// ItemList shows one classified list of items with edit and remove buttons
type ItemList struct {
	list     *widget.List
	title    *widget.Label
	entries  []schedule.Entry
	onEdit   func(models.ItemID)
	onRemove func(models.ItemID)
}

// ItemListConfig configures the item list
type ItemListConfig struct {
	Title    string                 // Heading shown above the list
	OnEdit   func(id models.ItemID) // Called when the edit button of a row is tapped
	OnRemove func(id models.ItemID) // Called when the remove button of a row is tapped
}

// NewItemList creates a new item list component
func NewItemList(config ItemListConfig) (*ItemList, *fyne.Container) {
	il := &ItemList{
		onEdit:   config.OnEdit,
		onRemove: config.OnRemove,
	}
	il.title = widget.NewLabel(config.Title)
	il.title.TextStyle.Bold = true

	il.list = widget.NewList(
		func() int {
			return len(il.entries)
		},
		func() fyne.CanvasObject {
			edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			remove.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil,
				container.NewHBox(edit, remove),
				widget.NewLabel("template"))
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(il.entries) {
				return
			}
			entry := il.entries[i]
			row := o.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(entry.Label)

			buttons := row.Objects[1].(*fyne.Container)
			edit := buttons.Objects[0].(*widget.Button)
			remove := buttons.Objects[1].(*widget.Button)

			id := entry.Item.ID
			edit.OnTapped = func() {
				if il.onEdit != nil {
					il.onEdit(id)
				}
			}
			remove.OnTapped = func() {
				if il.onRemove != nil {
					il.onRemove(id)
				}
			}
		})

	listScroll := container.NewScroll(il.list)
	listScroll.SetMinSize(fyne.NewSize(0, 150))

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		listScroll,
	)

	return il, container.NewBorder(il.title, nil, nil, nil, listWithBorder)
}

// SetEntries replaces the rows and refreshes
func (il *ItemList) SetEntries(entries []schedule.Entry) {
	il.entries = entries
	il.list.Refresh()
}

// Entries returns the rows currently shown
func (il *ItemList) Entries() []schedule.Entry {
	return il.entries
}

// Len returns the number of rows
func (il *ItemList) Len() int {
	return len(il.entries)
}
