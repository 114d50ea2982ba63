package main

import (
	"fmt"

	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/etree"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	product, err := deps.Products.FindProductByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	page := deps.Pages.Build(product, c.session(deps.Config))

	if err := c.checkOpenFAQ(page); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}

	if err := writePage(deps, page, c.Format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourcopy.ErrorMessage(err))
		return err
	}
	return nil
}

// session builds the disclosure state requested by the flags.
func (c *ShowCmd) session(cfg Config) *tourcopy.Session {
	session := tourcopy.NewSession()
	for _, key := range c.Expand {
		session.Sections.Toggle(tourcopy.SectionKey(key))
	}
	session.FAQ.Limit = cfg.FAQVisible
	if c.AllFAQ {
		session.FAQ.Expand()
	}
	if c.OpenFAQ > 0 {
		session.FAQ.ToggleEntry(c.OpenFAQ - 1)
	}
	return session
}

// checkOpenFAQ rejects an --open-faq position outside the visible entries.
func (c *ShowCmd) checkOpenFAQ(page *tourcopy.ProductPage) error {
	if c.OpenFAQ == 0 {
		return nil
	}
	visible := 0
	if page.FAQ != nil {
		visible = len(page.FAQ.Entries)
	}
	if c.OpenFAQ < 0 || c.OpenFAQ > visible {
		return tourcopy.Errorf(tourcopy.EINVALID, "--open-faq %d out of range: %d FAQ entries visible", c.OpenFAQ, visible)
	}
	return nil
}

func writePage(deps *Dependencies, page *tourcopy.ProductPage, format string) error {
	switch format {
	case "json":
		return writeJSON(deps.Stdout, page)
	case "xml":
		return writeXML(deps.Stdout, func(enc *etree.Encoder) error { return enc.EncodePage(page) })
	}

	var render tourcopy.RenderFunc
	if format == "markdown" {
		render = deps.Converter.Convert
	}
	out, err := tourcopy.FormatPage(page, render)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, out)
	return err
}
