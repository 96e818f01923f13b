package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/html/productview"
	"storefront.GO/sample"
	productService "storefront.GO/service/product"
)

var (
	showURL      string
	validateFile string
)

var productShowCmd = &cobra.Command{
	Use:   "product:show",
	Short: "Fetch the product data resource and print the page defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := config.NewLogger(config.Get().Debug)
		if err != nil {
			return err
		}
		defer logger.Sync()

		view := productview.New(productService.NewHTTPSource(showURL, &http.Client{}), productview.WithLogger(logger))
		view.Mount(cmd.Context())
		<-view.Done()

		printDefaults(cmd.OutOrStdout(), view.State())
		return nil
	},
}

func printDefaults(out io.Writer, s productview.State) {
	if s.Product == nil {
		fmt.Fprintln(out, productview.EmptyText)
		return
	}
	fmt.Fprintf(out, "Name:   %s\n", s.Product.Name)
	fmt.Fprintf(out, "Price:  %s\n", s.Product.Price)
	color, size := "-", "-"
	if s.SelectedColor != nil {
		color = s.SelectedColor.Name
	}
	if s.SelectedSize != nil {
		size = s.SelectedSize.Name
	}
	fmt.Fprintf(out, "Color:  %s\n", color)
	fmt.Fprintf(out, "Size:   %s\n", size)
}

var productValidateCmd = &cobra.Command{
	Use:   "product:validate",
	Short: "Check a product data file against what the page expects",
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.ReadCloser
		var err error
		if validateFile == "" {
			r, err = sample.FS.Open(sample.ProductsPath)
		} else {
			r, err = os.Open(validateFile)
		}
		if err != nil {
			return fmt.Errorf("open product data: %w", err)
		}
		defer r.Close()

		products, err := productService.DecodeProducts(r)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(products) == 0 {
			fmt.Fprintln(out, "no products: the page will show \""+productview.EmptyText+"\"")
			return nil
		}
		fmt.Fprintf(out, "%d product(s); the page shows the first\n", len(products))
		for i, p := range products {
			var problems []string
			if len(p.Colors) == 0 {
				problems = append(problems, "no colors, nothing is preselected")
			}
			if len(p.Sizes) <= productview.DefaultSizeIndex {
				problems = append(problems, fmt.Sprintf("%d sizes, no default size", len(p.Sizes)))
			} else if !p.Sizes[productview.DefaultSizeIndex].InStock {
				problems = append(problems, "default size is out of stock")
			}
			if len(p.Images) == 0 {
				problems = append(problems, "no images")
			}
			status := "ok"
			if len(problems) > 0 {
				status = strings.Join(problems, "; ")
			}
			fmt.Fprintf(out, "[%d] %s: %s\n", i, p.Name, status)
		}
		return nil
	},
}

func init() {
	productShowCmd.Flags().StringVarP(&showURL, "url", "u", "http://localhost:"+config.DefaultPort+"/"+config.DefaultProductDataURL, "Product data URL")
	productValidateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Product data JSON file (default: embedded sample)")
	rootCmd.AddCommand(productShowCmd, productValidateCmd)
}
