package theme

// Category is a functional grouping of UI components that share a style treatment.
type Category string

// Component categories.
const (
	CategorySurfaces    Category = "surfaces"
	CategoryActions     Category = "actions"
	CategoryInputs      Category = "inputs"
	CategorySelections  Category = "selections"
	CategorySliders     Category = "sliders"
	CategoryDataDisplay Category = "dataDisplay"
	CategoryFeedback    Category = "feedback"
	CategoryNavigation  Category = "navigation"
)

// Component identifies a themeable UI component, e.g. "MuiButton".
type Component string

// Components referenced directly by presets and plugins.
const (
	MuiAppBar         Component = "MuiAppBar"
	MuiBackdrop       Component = "MuiBackdrop"
	MuiButton         Component = "MuiButton"
	MuiCard           Component = "MuiCard"
	MuiCheckbox       Component = "MuiCheckbox"
	MuiChip           Component = "MuiChip"
	MuiFab            Component = "MuiFab"
	MuiFilledInput    Component = "MuiFilledInput"
	MuiIconButton     Component = "MuiIconButton"
	MuiOutlinedInput  Component = "MuiOutlinedInput"
	MuiPaper          Component = "MuiPaper"
	MuiPopover        Component = "MuiPopover"
	MuiRadio          Component = "MuiRadio"
	MuiSelect         Component = "MuiSelect"
	MuiSwitch         Component = "MuiSwitch"
	MuiTab            Component = "MuiTab"
	MuiTabs           Component = "MuiTabs"
	MuiTextField      Component = "MuiTextField"
	MuiInputLabel     Component = "MuiInputLabel"
	MuiModal          Component = "MuiModal"
	MuiCssBaseline    Component = "MuiCssBaseline"
	MuiLinearProgress Component = "MuiLinearProgress"
)

// categoryOrder is the canonical category order.
var categoryOrder = []Category{
	CategorySurfaces,
	CategoryActions,
	CategoryInputs,
	CategorySelections,
	CategorySliders,
	CategoryDataDisplay,
	CategoryFeedback,
	CategoryNavigation,
}

// componentCategories partitions the known components. Each name appears in
// exactly one category.
var componentCategories = map[Category][]Component{
	CategorySurfaces: {
		"MuiCard", "MuiPaper", "MuiAccordion", "MuiDialog",
		"MuiDrawer", "MuiMenu", "MuiPopover", "MuiAppBar",
	},
	CategoryActions: {
		"MuiButton", "MuiIconButton", "MuiFab", "MuiButtonGroup",
	},
	CategoryInputs: {
		"MuiTextField", "MuiSelect", "MuiAutocomplete", "MuiFilledInput",
		"MuiOutlinedInput", "MuiInput", "MuiInputBase",
	},
	CategorySelections: {
		"MuiCheckbox", "MuiRadio", "MuiSwitch", "MuiRadioGroup", "MuiFormControlLabel",
	},
	CategorySliders: {
		"MuiSlider", "MuiRating",
	},
	CategoryDataDisplay: {
		"MuiChip", "MuiAvatar", "MuiBadge", "MuiList", "MuiListItem",
		"MuiListItemButton", "MuiTable", "MuiTableCell", "MuiTableRow",
		"MuiTooltip", "MuiTypography",
	},
	CategoryFeedback: {
		"MuiAlert", "MuiSnackbar", "MuiCircularProgress",
		"MuiLinearProgress", "MuiSkeleton", "MuiBackdrop",
	},
	CategoryNavigation: {
		"MuiTabs", "MuiTab", "MuiBottomNavigation", "MuiBreadcrumbs",
		"MuiPagination", "MuiStepper", "MuiStep", "MuiLink",
	},
}

var componentIndex = func() map[Component]Category {
	idx := make(map[Component]Category)
	for _, cat := range categoryOrder {
		for _, c := range componentCategories[cat] {
			idx[c] = cat
		}
	}
	return idx
}()

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ComponentsIn returns the components in cat, or nil for an unknown category.
func ComponentsIn(cat Category) []Component {
	return append([]Component(nil), componentCategories[cat]...)
}

// AllComponents returns every known component, grouped by category order.
func AllComponents() []Component {
	out := make([]Component, 0, len(componentIndex))
	for _, cat := range categoryOrder {
		out = append(out, componentCategories[cat]...)
	}
	return out
}

// CategoryOf returns the category a component belongs to.
func CategoryOf(c Component) (Category, bool) {
	cat, ok := componentIndex[c]
	return cat, ok
}

// Known reports whether c is in the category map.
func (c Component) Known() bool {
	_, ok := componentIndex[c]
	return ok
}

// Valid reports whether cat is a known category.
func (cat Category) Valid() bool {
	_, ok := componentCategories[cat]
	return ok
}
