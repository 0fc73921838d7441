package viewmodels

type HomePage struct {
	BaseViewModel
	ApiURL string
	Links  []HomePageLink
}

type HomePageLink struct {
	Rel  string
	Href string
	Page string
}
